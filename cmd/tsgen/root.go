package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tsgen",
		Short: "Generate synthetic daily time series",
		Long: `tsgen composes synthetic daily series from a trend through interpolation
nodes, a random walk with ARMA terms, a seasonal signal, noise, level breaks
and manual outliers. A fixed seed reproduces a series exactly.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every generation stage")

	root.AddCommand(
		newGenerateCmd(a),
		newARMACmd(a),
		newInitCmd(),
		newInspectCmd(),
	)
	return root
}
