package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/amulet"
	"github.com/katalvlaran/amulet/config"
)

// app carries flags and shared state for one command tree.
type app struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "amulet",
		Short: "Derive deterministic 5x5 amulets from poems",
		Long: `amulet turns text into a reproducible 5x5 grid of hex digits, then
reports sigils (connected regions of 8s larger than four cells) and the
hand-authored patterns found in the grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if a.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newDeriveCmd(a),
		newBatchCmd(a),
		newPatternsCmd(a),
	)

	return root
}

// loadConfig returns the file configuration or the defaults.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(a.configPath)
}

// deriver builds a pipeline from the active configuration.
func (a *app) deriver() (*amulet.Deriver, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, amulet.WithLogger(a.logger))

	return amulet.New(opts...)
}
