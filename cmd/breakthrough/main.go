// Package main implements the breakthrough CLI: a terminal demo surface for
// the cinematic engine plus catalog and history inspection commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lumenpath/breakthrough/config"
	"github.com/lumenpath/breakthrough/history"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "breakthrough",
	Short: "Procedural cinematic sequence engine",
	Long: `breakthrough selects, mutates and plays short celebratory sequences.

Subcommands:
  demo     - Play a sequence in the terminal
  catalog  - List the sequence templates
  history  - Show or clear the persisted play log`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = buildLogger(cmd.Name())
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildLogger returns a stderr logger, except for the demo command where
// writing to the terminal would corrupt the tcell screen. The demo logs to
// a file when -v is set and stays silent otherwise.
func buildLogger(command string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if command == "demo" {
		if !verbose {
			return zap.NewNop(), nil
		}
		zc.OutputPaths = []string{"breakthrough-demo.log"}
		zc.ErrorOutputPaths = []string{"breakthrough-demo.log"}
	}
	return zc.Build()
}

// openHistory wires the configured store behind a Log
// An empty storage path means memory-only; close is always safe to call
func openHistory() (*history.Log, func(), error) {
	if cfg.Storage.Path == "" {
		return history.NewLog(history.NewMemoryStore(), logger), func() {}, nil
	}
	store, err := history.OpenSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history store: %w", err)
	}
	return history.NewLog(store, logger), func() { _ = store.Close() }, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "breakthrough.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
