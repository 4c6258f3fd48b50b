package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gosynth/stats"
	"github.com/sartorproj/gosynth/timeseries"
)

func newInspectCmd() *cobra.Command {
	opts := timeseries.DefaultCSVOptions()
	var lags int
	cmd := &cobra.Command{
		Use:   "inspect <file.csv>",
		Short: "Print diagnostics of a series stored as CSV",
		Long: `inspect reads a Date,Value table, such as the output of generate, and
prints its moments, the autocorrelation of its levels and differences, and a
Ljung-Box test on the differences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := timeseries.LoadCSV(args[0], opts)
			if err != nil {
				return err
			}
			sum, err := stats.Summarize(s, lags)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			_, err = sum.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVar(&opts.ValueColumn, "column", opts.ValueColumn, "value column name")
	cmd.Flags().StringVar(&opts.DateColumn, "date-column", "", "date column name (Date, date or ds when empty)")
	cmd.Flags().IntVar(&lags, "lags", stats.DefaultLags, "autocorrelation lags to report")
	return cmd
}
