package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gosynth/arma"
	"github.com/sartorproj/gosynth/config"
	"github.com/sartorproj/gosynth/errs"
	"github.com/sartorproj/gosynth/random"
	"github.com/sartorproj/gosynth/timeseries"
)

type armaOptions struct {
	ar      []float64
	ma      []float64
	scale   float64
	periods int
	seed    uint64
	start   string
	format  string
	output  string
}

func newARMACmd(a *app) *cobra.Command {
	o := &armaOptions{}
	cmd := &cobra.Command{
		Use:   "arma",
		Short: "Generate the random walk and ARMA stage on its own",
		Long: `arma runs only the stochastic stage of a generation. With the same seed,
coefficients and scale it reproduces the ARMA component of a full generation
without exogenous regressors.`,
		Example: `  tsgen arma --ar 0.5,0.2 --ma 0.3 --scale 1 --periods 100 --seed 7`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runARMA(cmd, a, o)
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&o.ar, "ar", []float64{1}, "AR coefficients, lag 1 first")
	f.Float64SliceVar(&o.ma, "ma", nil, "MA coefficients, lag 1 first")
	f.Float64Var(&o.scale, "scale", 1, "innovation standard deviation")
	f.IntVar(&o.periods, "periods", 100, "number of values")
	f.Uint64Var(&o.seed, "seed", 0, "random seed (fresh when unset)")
	f.StringVar(&o.start, "start", "2019-01-01", "first date of the output index, YYYY-MM-DD")
	f.StringVar(&o.format, "format", formatCSV, "output format: csv or json")
	f.StringVarP(&o.output, "output", "o", "", "output file (stdout when empty)")
	return cmd
}

func runARMA(cmd *cobra.Command, a *app, o *armaOptions) error {
	if err := checkFormat(o.format); err != nil {
		return err
	}
	start, err := time.Parse(config.DateFormat, o.start)
	if err != nil {
		return errs.Invalid("start_date", "%v", err)
	}

	seed := o.seed
	if !cmd.Flags().Changed("seed") {
		seed = random.NewSeed()
	}

	values, err := arma.Generate(o.ar, o.ma, o.scale, o.periods, seed)
	if err != nil {
		return err
	}
	index, err := timeseries.DailyIndex(start, o.periods)
	if err != nil {
		return err
	}
	s, err := timeseries.NewWithTimestamps(index, values)
	if err != nil {
		return err
	}
	s.Name = "arma"
	s.Seed = seed

	order := arma.Order{P: len(o.ar), Q: len(o.ma)}
	a.logger.Info("arma generated",
		"order", order.String(),
		"periods", o.periods,
		"seed", seed)
	return writeAll(cmd.OutOrStdout(), o.output, []*timeseries.Series{s}, o.format)
}
