// Package timeseries provides the container returned by the generator.
//
// A Series is a pair of aligned slices: one calendar day per period in
// Timestamps and the composed observation in Values. Optionally it carries the
// additive stage tracks that produced those values.
//
// # Building an Index
//
// Produce the period index for a start date:
//
//	dates, err := timeseries.DailyIndex(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 30)
//
// # Writing Output
//
// The tabular form has exactly two columns, Date and Value:
//
//	err := timeseries.WriteCSV(os.Stdout, series)
//	err = timeseries.SaveCSV(series, "series.csv")
//
// # Loading Regressors
//
// Exogenous regressors can be read back from CSV files:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "temperature"
//	reg, err := timeseries.LoadCSV("weather.csv", opts)
//
// # Basic Statistics
//
//	mean := series.Mean()
//	std := series.Std()
//	lo, hi := series.Min(), series.Max()
package timeseries
