package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/perch-labs/perch-cli/internal/core/domain"
	"github.com/perch-labs/perch-cli/internal/core/services"
)

var forgetYes bool

var forgetCmd = &cobra.Command{
	Use:   "forget [path]",
	Short: "Remove a file from the index",
	Long: `Removes a file from the search index without touching the file on
disk. Prompts for confirmation unless --yes is given; a declined prompt
discards the request silently.`,
	Args: cobra.ExactArgs(1),
	RunE: runForget,
}

func init() {
	forgetCmd.Flags().BoolVarP(&forgetYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(forgetCmd)
}

func runForget(cmd *cobra.Command, args []string) error {
	if indexPort == nil {
		return errors.New("index not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	confirmer := newStdinConfirmer(cmd.InOrStdin(), cmd.OutOrStdout(), forgetYes)
	dispatcher := services.NewDispatcher(fileAccess, indexPort, confirmer, logNotifier{})

	op := domain.FileOperation{Path: path, Kind: domain.FileOpForget}
	if err := dispatcher.Dispatch(cmd.Context(), op); err != nil {
		return fmt.Errorf("forget failed: %w", err)
	}
	return nil
}
