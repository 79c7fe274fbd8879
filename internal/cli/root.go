// Package cli implements the gridsearch command-line interface.
//
// The CLI is a thin caller around the library packages: it reads a puzzle
// grid from a file (or stdin), hands the text to one rule set and prints the
// numeric answers. Logging goes to stderr through charmbracelet/log;
// --verbose enables debug output including per-search expansion counts.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/internal/config"
)

var version = "dev"

// options are the persistent flags shared by every subcommand.
type options struct {
	verbose    bool
	configPath string
	cfg        config.Config
}

// NewRootCommand builds the gridsearch command tree. Logs are written to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "gridsearch",
		Short:        "gridsearch solves grid path-search puzzles",
		Long:         `gridsearch runs flood fills and constrained shortest paths over character grids: pipe loops, light beams, turn-limited carts and garden walks.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logOut, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logger.Debug("configuration loaded", "path", opts.configPath, "config", fmt.Sprintf("%+v", cfg))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with run parameters")

	root.AddCommand(newLoopCmd(opts))
	root.AddCommand(newDigCmd(opts))
	root.AddCommand(newBeamCmd(opts))
	root.AddCommand(newCrucibleCmd(opts))
	root.AddCommand(newGardenCmd(opts))

	return root
}

// Execute runs the gridsearch CLI with ctx and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// readInput returns the contents of args[0], or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
