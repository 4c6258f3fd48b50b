package stats

import (
	"math"

	"github.com/sartorproj/gosynth/errs"
)

// ACF calculates the sample autocorrelation of values for lags 0 to maxLag.
// maxLag is capped at len(values)-1. A constant input has no defined
// autocorrelation and yields nil.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}

// ConfidenceBound is the approximate 95% bound for autocorrelations of white
// noise of length n.
func ConfidenceBound(n int) float64 {
	if n <= 0 {
		return math.Inf(1)
	}
	return 1.96 / math.Sqrt(float64(n))
}

// SignificantLags returns the lags k >= 1 whose autocorrelation exceeds bound
// in absolute value.
func SignificantLags(acf []float64, bound float64) []int {
	var lags []int
	for k := 1; k < len(acf); k++ {
		if math.Abs(acf[k]) > bound {
			lags = append(lags, k)
		}
	}
	return lags
}

// LjungBoxResult is the outcome of a Ljung-Box portmanteau test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// WhiteNoise reports whether the test fails to reject independence at
// level alpha.
func (r *LjungBoxResult) WhiteNoise(alpha float64) bool {
	return r.PValue > alpha
}

// LjungBox tests values for autocorrelation up to lags. fitdf is subtracted
// from the degrees of freedom when values are residuals of a fitted model.
func LjungBox(values []float64, lags, fitdf int) (*LjungBoxResult, error) {
	n := len(values)
	if n < 10 {
		return nil, errs.Invalid("values", "need at least 10 observations, got %d", n)
	}
	if lags < 1 {
		return nil, errs.Invalid("lags", "must be positive, got %d", lags)
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(values, lags)
	if acf == nil {
		return nil, errs.Invalid("values", "constant series has no autocorrelation")
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += acf[k] * acf[k] / float64(n-k)
	}
	q *= float64(n) * float64(n+2)

	dof := max(lags-fitdf, 1)
	return &LjungBoxResult{
		Statistic: q,
		PValue:    1 - chiSquaredCDF(q, dof),
		Lags:      lags,
		DOF:       dof,
	}, nil
}
