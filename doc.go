// Package gosynth generates synthetic daily time series with known structure.
//
// A series is the sum of independent stages over a daily calendar index:
//
//   - a trend through sparse interpolation nodes (natural cubic spline,
//     piecewise linear or a single polynomial)
//   - a random walk with AR and MA terms and optional lagged exogenous
//     regressors
//   - a seasonal signal in one of five styles
//   - Gaussian noise
//   - level breaks that persist from their index onwards
//
// Manual outliers then overwrite single values. Every stage draws from its own
// stream of a seeded generator, so a fixed seed reproduces a series exactly
// and changing one stage leaves the others untouched.
//
// # Quick Start
//
// Generate the default series:
//
//	cfg := generator.DefaultConfig()
//	cfg.Seed = generator.Seed(42)
//	series, err := generator.Generate(cfg)
//
// Add a weekly sine season and keep the stage breakdown:
//
//	cfg.SeasonEffect = 15
//	cfg.Season = seasonality.Sin{PeriodLength: 7, StartIndex: 4}
//	cfg.KeepComponents = true
//
// Run only the stochastic stage:
//
//	walk, err := arma.Generate([]float64{0.5}, []float64{0.3}, 1, 365, 7)
//
// # Packages
//
//   - generator: configuration, validation and composition
//   - trend, arma, seasonality: the stages
//   - timeseries: the series container, its daily index and CSV I/O
//   - config: YAML configuration files
//   - stats: autocorrelation diagnostics of generated series
//   - errs: the error taxonomy shared by every package
//
// The tsgen command in cmd/tsgen wraps all of this for the shell.
package gosynth
