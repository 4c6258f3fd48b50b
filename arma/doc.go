// Package arma implements the stochastic stage of series generation.
//
// A Process combines a random walk, an ARMA(p,q) recursion and optional
// exogenous regressors. A single innovation sequence with standard deviation
// Scale feeds both the AR and the MA parts, so Scale governs the whole
// stochastic stage: zero Scale and no regressors give the zero sequence
// regardless of the coefficients.
//
// # Basic Usage
//
//	// Pure random walk
//	walk, err := arma.Generate([]float64{1}, nil, 2, 365, 42)
//
//	// ARMA(1,1) with a lagged regressor
//	p := &arma.Process{
//	    AR:    []float64{0.6},
//	    MA:    []float64{0.3},
//	    Scale: 1,
//	    Exogenous: []arma.Regressor{
//	        {Coeffs: []float64{0.5, 0.25}, Series: temperature},
//	    },
//	}
//	values, err := p.Generate(365, random.Source(42, random.StreamARMA))
//
// Generation is reproducible bit for bit for a given seed.
package arma
