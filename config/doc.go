// Package config reads and writes generation configurations as YAML.
//
// A configuration file mirrors the keyword arguments of a generation call:
//
//	start_date: "2019-01-01"
//	n_periods: 1096
//	interpolation_nodes: [[0, 98], [300, 92], [700, 190], [1096, 213]]
//	level_breaks: [[250, 100], [650, -50]]
//	ar: [1]
//	randomwalk_scale: 2
//	noise_scale: 10
//	season_eff: 15
//	season_conf:
//	  style: sin
//	  period_length: 7
//	  start_index: 4
//	exogenous:
//	  - coeff: [0.5, 0.25]
//	    csv: weather.csv
//	    column: temperature
//	seed: 42
//
// Parse checks the document's shape with validator struct tags; File.Config
// converts it into a generator.Config, where the remaining semantic checks
// run. Both report errors through the errs taxonomy with yaml key paths.
package config
