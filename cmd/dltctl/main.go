// Command dltctl is a small command-line front end over the dltcore
// library: inspecting, tallying, and FIBEX-annotating DLT trace files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dltctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "dltctl",
		Short:             "Inspect and tally DLT trace files",
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file (filters, FIBEX paths)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCatCommand())
	root.AddCommand(newStatCommand())
	root.AddCommand(newFibexCommand())

	return root
}

// setupLogging selects a tint.Handler by verbosity, the same pattern
// USA-RedDragon/DMRHub's root command uses to pick a slog handler.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
}
