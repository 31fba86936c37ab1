// Package cli implements the command-line interface.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aidanlsb/cardboard/internal/board"
	"github.com/aidanlsb/cardboard/internal/config"
	"github.com/aidanlsb/cardboard/internal/logging"
	"github.com/aidanlsb/cardboard/internal/ui"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
	logger             *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cardboard",
	Short: "Cardboard - view, tidy and merge vCard address books",
	Long: `Cardboard reads vCard (.vcf) files as columns of contact cards.

Cards round-trip losslessly: anything Cardboard does not understand is kept
and flagged, and a file that is only read and exported comes back byte for
byte. Properties can be moved between cards, whole cards between files, and
duplicate cards merged.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(cfg.Log, verbose)
		if err != nil {
			return err
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		cmd.Flags().Visit(func(f *pflag.Flag) {
			logger.Debug("flag", zap.String("command", cmd.Name()), zap.String("name", f.Name), zap.String("value", f.Value.String()))
		})
		return checkJSONCompatible(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")
}

// textOnlyFlags select a text rendering and make no sense with --json.
var textOnlyFlags = map[string]bool{"yaml": true}

// checkJSONCompatible rejects text-only flags when --json is set.
func checkJSONCompatible(cmd *cobra.Command) error {
	if !jsonOutput {
		return nil
	}
	var clash []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if textOnlyFlags[f.Name] {
			clash = append(clash, "--"+f.Name)
		}
	})
	if len(clash) > 0 {
		return fmt.Errorf("%s cannot be combined with --json", strings.Join(clash, ", "))
	}
	return nil
}

// getConfig returns the loaded config, or the defaults when none was loaded.
func getConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// getLogger returns the configured logger, or a no-op logger.
func getLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolvePath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(resolvedPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	return loadedCfg, resolvedPath, nil
}

// boardOptions reads the [export] section.
func boardOptions() board.Options {
	c := getConfig()
	return board.Options{
		FoldWidth: c.Export.FoldWidth,
		Backup:    c.Export.Backup,
	}
}

// loadBoard loads every path as a column, in order.
func loadBoard(ctx context.Context, paths []string) (*board.Board, []*board.Column, error) {
	return loadBoardWith(ctx, paths, boardOptions())
}

func loadBoardWith(ctx context.Context, paths []string, opts board.Options) (*board.Board, []*board.Column, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b := board.New(getLogger(), opts)
	cols := make([]*board.Column, 0, len(paths))
	for _, path := range paths {
		col, err := b.LoadFile(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, col)
	}
	// A path given twice reloads its column; hand out the current one.
	for i, col := range cols {
		if current, ok := b.Column(col.ID()); ok {
			cols[i] = current
		}
	}
	return b, cols, nil
}
