package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perch-labs/perch-cli/internal/adapters/driving/mcp"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/core/services"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default)
  perch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  perch mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// autoConfirmer accepts every confirmation. An MCP client invoking a
// destructive tool by name is itself the confirmation.
type autoConfirmer struct{}

func (autoConfirmer) Confirm(_ context.Context, _ string) (bool, error) {
	return true, nil
}

var _ driven.Confirmer = autoConfirmer{}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if indexPort == nil {
		return errors.New("index not configured")
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	session := services.NewSession(indexPort, logNotifier{}, settings)
	dispatcher := services.NewDispatcher(fileAccess, indexPort, autoConfirmer{}, logNotifier{})

	server, err := mcp.NewServer(&mcp.Ports{
		Session: session,
		FileOps: dispatcher,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
