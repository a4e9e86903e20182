// SPDX-License-Identifier: MIT

// Package cli implements the lvlgrid command-line interface.
//
// The CLI reads a puzzle input, builds a grid from it and runs one of the
// grid tools on it. It is built with cobra; logging goes through
// charmbracelet/log and is attached to the command context.
//
// # Commands
//
//   - rolls:   paper-roll accessibility puzzle (part 1, or part 2 with --part2)
//   - inspect: size, rune counts and transposed rendering of an input
//   - regions: connected regions of a land rune and bridge costs between them
//
// # Input
//
// The input argument is resolved by config.Config.Resolve: nothing or "t"
// selects the test input, a number selects a day file, anything else is a
// path.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/internal/config"
)

// NewRootCommand builds the command tree. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "lvlgrid",
		Short:         "lvlgrid builds grids from puzzle input and queries them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logOut, level)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			logger.Debug("config loaded", "input_dir", cfg.InputDir, "test_file", cfg.TestFile, "land", cfg.Land)

			ctx := withLogger(cmd.Context(), logger)
			ctx = context.WithValue(ctx, configKey, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(newRollsCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newRegionsCmd())

	return root
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// loadConfig reads an explicit config file, or discovers one in the
// working directory.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.Discover(".")
	return cfg, err
}

func configFromContext(ctx context.Context) config.Config {
	if c, ok := ctx.Value(configKey).(config.Config); ok {
		return c
	}
	return config.Default()
}

// readInput resolves args[0] (if any) and returns the file contents.
func readInput(cmd *cobra.Command, args []string) (string, config.Input, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	in := configFromContext(cmd.Context()).Resolve(arg)
	loggerFromContext(cmd.Context()).Debug("reading input", "path", in.Path, "testing", in.Testing)

	data, err := os.ReadFile(in.Path)
	if err != nil {
		return "", in, fmt.Errorf("read input: %w", err)
	}
	return string(data), in, nil
}
