package generator

import (
	"fmt"
	"math"

	"github.com/sartorproj/gosynth/errs"
	"github.com/sartorproj/gosynth/seasonality"
	"github.com/sartorproj/gosynth/trend"
)

// Validate checks the whole configuration. Generate calls it before any
// stage runs, so a failing configuration never yields partial output.
func Validate(c *Config) error {
	if c == nil {
		return errs.Invalid("", "configuration is nil")
	}
	n := c.Periods
	if n <= 0 {
		return errs.Invalid("n_periods", "must be positive, got %d", n)
	}
	if c.StartDate.IsZero() {
		return errs.Invalid("start_date", "is required")
	}

	curve, err := trend.NewCurve(c.Nodes, c.TrendMethod)
	if err != nil {
		return err
	}
	if lo, hi := curve.Span(); lo > 0 || hi < float64(n-1) {
		return errs.Invalid("interpolation_nodes", "node span [%v, %v] does not cover [0, %d]", lo, hi, n-1)
	}

	if err := c.process().Validate(n); err != nil {
		return err
	}
	if err := seasonality.Validate(n, c.SeasonEffect, c.Season); err != nil {
		return err
	}
	if !finite(c.NoiseScale) || c.NoiseScale < 0 {
		return errs.Invalid("noise_scale", "must be finite and non-negative, got %v", c.NoiseScale)
	}

	for i, b := range c.LevelBreaks {
		field := fmt.Sprintf("level_breaks[%d]", i)
		if b.Index < 0 || b.Index >= n {
			return errs.OutOfRange(field+".index", b.Index, n)
		}
		if !finite(b.Magnitude) {
			return errs.Invalid(field+".magnitude", "must be finite, got %v", b.Magnitude)
		}
	}
	for i, o := range c.Outliers {
		field := fmt.Sprintf("manual_outliers[%d]", i)
		if o.Index < 0 || o.Index >= n {
			return errs.OutOfRange(field+".index", o.Index, n)
		}
		if !finite(o.Value) {
			return errs.Invalid(field+".value", "must be finite, got %v", o.Value)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
