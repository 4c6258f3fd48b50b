// Package seasonality implements the seasonal stage of series generation.
//
// A seasonality configuration is a tagged variant: each style is its own type
// carrying only the fields that style reads.
//
//   - FixedError ("fixed+error"): one event per fixed cycle, jittered.
//   - SemiMarkov ("semi-markov"): events separated by random durations.
//   - Holiday ("holiday"): events on listed calendar days.
//   - Sin ("sin"): e·sin(2π(i-start)/length).
//   - SinCovar ("sin_covar"): a sine whose cycle length is redrawn per cycle.
//
// Event styles produce pulses of height e, wave styles oscillate in [-e, e].
//
// # Usage
//
//	cfg := seasonality.Sin{PeriodLength: 7, StartIndex: 4}
//	season, err := seasonality.Generate(dates, 15, cfg, random.Source(seed, random.StreamSeason))
//
// Configuration files hold a flat mapping; New turns it into a variant:
//
//	length, start := 7.0, 4
//	cfg, err := seasonality.New("sin", seasonality.Fields{PeriodLength: &length, StartIndex: &start})
package seasonality
