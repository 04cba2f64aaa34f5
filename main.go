// Perch is a local file search tool: it indexes directories into a
// full-text index and serves them through a CLI, an interactive TUI,
// and an MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/perch-labs/perch-cli/internal/adapters/driven/config/file"
	"github.com/perch-labs/perch-cli/internal/adapters/driven/files/local"
	"github.com/perch-labs/perch-cli/internal/adapters/driven/index/sqlite"
	"github.com/perch-labs/perch-cli/internal/adapters/driving/cli"
	"github.com/perch-labs/perch-cli/internal/ingest"
	"github.com/perch-labs/perch-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settings := file.LoadSettings(configStore)

	index, err := sqlite.New(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}
	defer func() {
		if err := index.Close(); err != nil {
			logger.Warn("Closing index: %v", err)
		}
	}()

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Index:    index,
		Files:    local.New(),
		Config:   configStore,
		Settings: settings,
		Scanner:  ingest.NewScanner(index),
	})

	return cli.Execute()
}
