// Package cli provides the perch command-line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/ports/driven"
	"github.com/perch-labs/perch-cli/internal/ingest"
	"github.com/perch-labs/perch-cli/internal/logger"
)

var (
	version = "dev"
	verbose bool
)

// Injected driven-side services. Commands compose their own session
// and dispatcher from these so each surface wires its own notifier and
// confirmer.
var (
	indexPort   driven.Index
	fileAccess  driven.FileAccess
	configStore driven.ConfigStore
	settings    domain.Settings
	scanner     *ingest.Scanner
)

// Services aggregates the driven adapters the commands compose from.
type Services struct {
	Index    driven.Index
	Files    driven.FileAccess
	Config   driven.ConfigStore
	Settings domain.Settings
	Scanner  *ingest.Scanner
}

// SetServices injects the driven adapters for all commands.
func SetServices(s *Services) {
	indexPort = s.Index
	fileAccess = s.Files
	configStore = s.Config
	settings = s.Settings
	scanner = s.Scanner
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "perch",
	Short: "Search your local files",
	Long: `Perch indexes local directories into a full-text index and provides
keyword search with capped pagination, an interactive TUI, and an MCP
server for AI assistant integration.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
