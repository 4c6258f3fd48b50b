// Package stats computes diagnostics of generated series.
//
// The autocorrelation of a series and the Ljung-Box test on its differences
// are a quick check that a generated ARMA component has the structure its
// coefficients ask for:
//
//	s, _ := generator.Generate(cfg)
//	sum, err := stats.Summarize(s, 10)
//	if err == nil {
//	    sum.WriteTo(os.Stderr)
//	}
//
// A pure random walk (ar [1], no ma) has white-noise differences, so its
// Ljung-Box p-value should be large; ar [1.5, -0.5] gives differences with
// lag-1 autocorrelation near 0.5 and a p-value near zero.
package stats
