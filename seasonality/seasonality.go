// Package seasonality generates periodic signals in several styles.
package seasonality

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/sartorproj/gosynth/errs"
)

// Style names a seasonality model.
type Style string

const (
	StyleFixedError Style = "fixed+error"
	StyleSemiMarkov Style = "semi-markov"
	StyleHoliday    Style = "holiday"
	StyleSin        Style = "sin"
	StyleSinCovar   Style = "sin_covar"
)

// Styles lists every supported style.
var Styles = []Style{StyleFixedError, StyleSemiMarkov, StyleHoliday, StyleSin, StyleSinCovar}

// Config is one of FixedError, SemiMarkov, Holiday, Sin or SinCovar.
// Each variant carries only the fields its style reads.
type Config interface {
	Style() Style
	validate(n int) error
	shape(dates []time.Time, rng *rand.Rand) []float64
}

// FixedError marks one event per cycle of PeriodLength periods, each moved
// by a rounded N(0, PeriodSD²) offset.
type FixedError struct {
	PeriodLength int
	PeriodSD     float64
	StartIndex   int
}

// SemiMarkov marks events separated by rounded N(PeriodLength, PeriodSD²)
// durations, so the phase drifts from cycle to cycle.
type SemiMarkov struct {
	PeriodLength int
	PeriodSD     float64
	StartIndex   int
}

// Holiday marks every period whose date falls in one of the windows.
type Holiday struct {
	Windows []Window
}

// Window is a run of consecutive holiday days.
type Window struct {
	Start time.Time
	Days  int
}

// Sin is a sine wave of PeriodLength periods, zero at StartIndex.
type Sin struct {
	PeriodLength float64
	StartIndex   int
}

// SinCovar is a sine wave whose cycle length is redrawn from
// N(PeriodLength, PeriodSD²) at the start of every cycle.
type SinCovar struct {
	PeriodLength float64
	PeriodSD     float64
	StartIndex   int
}

func (FixedError) Style() Style { return StyleFixedError }
func (SemiMarkov) Style() Style { return StyleSemiMarkov }
func (Holiday) Style() Style    { return StyleHoliday }
func (Sin) Style() Style        { return StyleSin }
func (SinCovar) Style() Style   { return StyleSinCovar }

// Generate returns the seasonal signal for dates scaled by effect. A nil
// config requires a zero effect and yields zeros; a non-nil config requires a
// nonzero effect.
func Generate(dates []time.Time, effect float64, cfg Config, rng *rand.Rand) ([]float64, error) {
	if err := Validate(len(dates), effect, cfg); err != nil {
		return nil, err
	}

	season := make([]float64, len(dates))
	if cfg == nil {
		return season, nil
	}
	for i, v := range cfg.shape(dates, rng) {
		season[i] = effect * v
	}
	return season, nil
}

// Validate checks the effect/config pairing and the style's own fields.
func Validate(n int, effect float64, cfg Config) error {
	if math.IsNaN(effect) || math.IsInf(effect, 0) {
		return errs.Invalid("season_eff", "must be finite, got %v", effect)
	}
	switch {
	case cfg == nil && effect != 0:
		return errs.Invalid("season_conf", "required when season_eff is nonzero (%v)", effect)
	case cfg != nil && effect == 0:
		return errs.Invalid("season_eff", "must be nonzero when season_conf (%s) is set", cfg.Style())
	case cfg == nil:
		return nil
	}
	return cfg.validate(n)
}

func validatePeriodic(n, length int, sd float64, start int) error {
	if length < 1 {
		return errs.Invalid("season_conf.period_length", "must be at least 1, got %d", length)
	}
	if err := validateSD(sd); err != nil {
		return err
	}
	if start < 0 || start >= n {
		return errs.OutOfRange("season_conf.start_index", start, n)
	}
	return nil
}

func validateSD(sd float64) error {
	if math.IsNaN(sd) || math.IsInf(sd, 0) || sd < 0 {
		return errs.Invalid("season_conf.period_sd", "must be finite and non-negative, got %v", sd)
	}
	return nil
}

func validateWave(length float64) error {
	if math.IsNaN(length) || math.IsInf(length, 0) || length <= 0 {
		return errs.Invalid("season_conf.period_length", "must be positive, got %v", length)
	}
	return nil
}

func (c FixedError) validate(n int) error {
	return validatePeriodic(n, c.PeriodLength, c.PeriodSD, c.StartIndex)
}

func (c SemiMarkov) validate(n int) error {
	return validatePeriodic(n, c.PeriodLength, c.PeriodSD, c.StartIndex)
}

func (c Holiday) validate(int) error {
	if len(c.Windows) == 0 {
		return errs.Invalid("season_conf.season_dates", "at least one holiday date required")
	}
	for i, w := range c.Windows {
		if w.Start.IsZero() {
			return errs.Invalid(fmt.Sprintf("season_conf.season_dates[%d]", i), "date is required")
		}
		if w.Days < 1 {
			return errs.Invalid(fmt.Sprintf("season_conf.season_dates[%d]", i), "days must be at least 1, got %d", w.Days)
		}
	}
	return nil
}

func (c Sin) validate(int) error {
	return validateWave(c.PeriodLength)
}

func (c SinCovar) validate(int) error {
	if err := validateWave(c.PeriodLength); err != nil {
		return err
	}
	return validateSD(c.PeriodSD)
}
