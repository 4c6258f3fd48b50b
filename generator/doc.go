// Package generator composes deterministic synthetic time series.
//
// A generation call turns a Config into a timeseries.Series of Periods daily
// observations. The value at period i is
//
//	trend[i] + arma[i] + season[i] + noise[i] + shifts[i]
//
// after which manual outliers overwrite their periods. The whole
// configuration is validated before any stage runs.
//
// # Basic Usage
//
//	cfg := generator.DefaultConfig()
//	cfg.Seed = generator.Seed(42)
//	series, err := generator.Generate(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Reproducibility
//
// Every call owns its random sources, one stream per stochastic stage derived
// from the seed. The same Config and seed give identical output, in any
// order and from any goroutine. Changing, say, the noise scale leaves the
// ARMA and seasonal draws untouched.
//
// # Errors
//
// Failures wrap errs.ErrInvalidConfiguration, errs.ErrOutOfRangeIndex or
// errs.ErrDimensionMismatch and name the offending field:
//
//	if errors.Is(err, errs.ErrOutOfRangeIndex) {
//	    fmt.Println("bad index in", errs.Field(err))
//	}
//
// # Logging
//
// Generator logs one Debug record per stage (trend, arma, season, noise,
// breaks) and one Info record per series through the logger given with
// WithLogger. Every record carries the series name, seed and n_periods.
package generator
