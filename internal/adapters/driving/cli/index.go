package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
)

// watchRootsKey is the config key holding the indexed directory roots.
const watchRootsKey = "watch.roots"

var indexCmd = &cobra.Command{
	Use:   "index [path...]",
	Short: "Index directories into the search index",
	Long: `Walks the given directories and indexes every file by name, with
full-text content for recognised text formats. Indexed roots are
remembered so the watcher can keep them fresh.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if scanner == nil {
		return errors.New("scanner not configured")
	}

	total := 0
	for _, root := range args {
		abs, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", root, err)
		}

		count, err := scanner.ScanRoot(cmd.Context(), abs)
		if err != nil {
			return fmt.Errorf("indexing %s: %w", abs, err)
		}

		cmd.Printf("Indexed %d files under %s\n", count, abs)
		total += count

		if err := rememberRoot(abs); err != nil {
			return fmt.Errorf("recording root %s: %w", abs, err)
		}
	}

	cmd.Printf("Done. %d files indexed.\n", total)
	return nil
}

// rememberRoot persists a root for the watcher, skipping duplicates.
func rememberRoot(root string) error {
	if configStore == nil {
		return nil
	}

	roots := configStore.GetStringSlice(watchRootsKey)
	if slices.Contains(roots, root) {
		return nil
	}
	return configStore.Set(watchRootsKey, append(roots, root))
}
