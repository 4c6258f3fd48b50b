// Package arma generates random-walk and ARMA perturbation sequences.
package arma

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sartorproj/gosynth/errs"
	"github.com/sartorproj/gosynth/random"
)

// Order represents the ARMA model order (p, q).
type Order struct {
	P int // AR order (number of autoregressive terms)
	Q int // MA order (number of moving average terms)
}

func (o Order) String() string {
	return fmt.Sprintf("ARMA(%d,%d)", o.P, o.Q)
}

// Regressor is an exogenous series entering the process through lagged
// coefficients: Coeffs[l] multiplies Series[t-l].
type Regressor struct {
	Coeffs []float64
	Series []float64
}

// Process describes the recursion
//
//	x[t] = Σ AR[i]·x[t-1-i] + e[t] + Σ MA[j]·e[t-1-j] + Σ_k Σ_l c_kl·z_k[t-l]
//
// with e[t] ~ N(0, Scale²). Lagged terms before the start are zero.
type Process struct {
	AR        []float64 // AR coefficients (phi)
	MA        []float64 // MA coefficients (theta)
	Scale     float64   // Innovation standard deviation
	Exogenous []Regressor
}

// RandomWalk returns the process x[t] = x[t-1] + e[t].
func RandomWalk(scale float64) *Process {
	return &Process{AR: []float64{1}, Scale: scale}
}

// Order returns the (p, q) order of the process.
func (p *Process) Order() Order {
	return Order{P: len(p.AR), Q: len(p.MA)}
}

// Validate checks the process against a series of n periods.
func (p *Process) Validate(n int) error {
	if n <= 0 {
		return errs.Invalid("n_periods", "must be positive, got %d", n)
	}
	if math.IsNaN(p.Scale) || math.IsInf(p.Scale, 0) || p.Scale < 0 {
		return errs.Invalid("randomwalk_scale", "must be finite and non-negative, got %v", p.Scale)
	}
	if err := checkFinite("ar", p.AR); err != nil {
		return err
	}
	if err := checkFinite("ma", p.MA); err != nil {
		return err
	}
	for k, reg := range p.Exogenous {
		field := fmt.Sprintf("exogenous[%d]", k)
		if len(reg.Coeffs) == 0 {
			return errs.Invalid(field+".coeff", "at least one coefficient required")
		}
		if err := checkFinite(field+".coeff", reg.Coeffs); err != nil {
			return err
		}
		if len(reg.Series) != n {
			return errs.Mismatch(field+".series", len(reg.Series), n)
		}
		if err := checkFinite(field+".series", reg.Series); err != nil {
			return err
		}
	}
	return nil
}

// Generate produces n values of the process, drawing innovations from rng.
// With Scale zero no draws are made.
func (p *Process) Generate(n int, rng *rand.Rand) ([]float64, error) {
	if err := p.Validate(n); err != nil {
		return nil, err
	}

	innovations := make([]float64, n)
	if p.Scale > 0 {
		for t := range innovations {
			innovations[t] = p.Scale * rng.NormFloat64()
		}
	}

	ar, ma := len(p.AR), len(p.MA)
	ts := make([]float64, n)
	for t := 0; t < n; t++ {
		x := innovations[t]

		// AR component
		for i := 0; i < ar && t-i-1 >= 0; i++ {
			x += p.AR[i] * ts[t-i-1]
		}

		// MA component
		for j := 0; j < ma && t-j-1 >= 0; j++ {
			x += p.MA[j] * innovations[t-j-1]
		}

		// Exogenous regressors
		for _, reg := range p.Exogenous {
			for l := 0; l < len(reg.Coeffs) && t-l >= 0; l++ {
				x += reg.Coeffs[l] * reg.Series[t-l]
			}
		}

		ts[t] = x
	}
	return ts, nil
}

// Generate runs the ARMA stage on its own: the same sequence a full
// generation with this seed, these coefficients and no exogenous regressors
// adds to its trend.
func Generate(ar, ma []float64, scale float64, n int, seed uint64) ([]float64, error) {
	p := &Process{AR: ar, MA: ma, Scale: scale}
	return p.Generate(n, random.Source(seed, random.StreamARMA))
}

func checkFinite(field string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.Invalid(fmt.Sprintf("%s[%d]", field, i), "must be finite, got %v", v)
		}
	}
	return nil
}
