package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/sartorproj/gosynth/errs"
)

// Noise returns n independent N(0, scale²) draws, or zeros when scale is zero.
func Noise(n int, scale float64, rng *rand.Rand) ([]float64, error) {
	if n <= 0 {
		return nil, errs.Invalid("n_periods", "must be positive, got %d", n)
	}
	if !finite(scale) || scale < 0 {
		return nil, errs.Invalid("noise_scale", "must be finite and non-negative, got %v", scale)
	}

	noise := make([]float64, n)
	if scale == 0 {
		return noise, nil
	}
	for i := range noise {
		noise[i] = scale * rng.NormFloat64()
	}
	return noise, nil
}

// LevelShifts returns the cumulative step signal of breaks over n periods.
func LevelShifts(n int, breaks []LevelBreak) ([]float64, error) {
	shifts := make([]float64, n)
	for i, b := range breaks {
		if b.Index < 0 || b.Index >= n {
			return nil, errs.OutOfRange(fmtIndex("level_breaks", i), b.Index, n)
		}
		for j := b.Index; j < n; j++ {
			shifts[j] += b.Magnitude
		}
	}
	return shifts, nil
}

// ApplyOutliers overwrites values at the outlier indices. Later outliers on
// the same index win.
func ApplyOutliers(values []float64, outliers []Outlier) error {
	for i, o := range outliers {
		if o.Index < 0 || o.Index >= len(values) {
			return errs.OutOfRange(fmtIndex("manual_outliers", i), o.Index, len(values))
		}
		values[o.Index] = o.Value
	}
	return nil
}

func fmtIndex(list string, i int) string {
	return fmt.Sprintf("%s[%d].index", list, i)
}
