package trend

// naturalSpline returns the second derivatives of the natural cubic spline
// through (xs, ys); both end values are zero.
func naturalSpline(xs, ys []float64) []float64 {
	n := len(xs)
	m := make([]float64, n)
	if n < 3 {
		return m
	}

	// Tridiagonal system for m[1..n-2], solved with the Thomas algorithm.
	size := n - 2
	sub := make([]float64, size)
	diag := make([]float64, size)
	sup := make([]float64, size)
	rhs := make([]float64, size)

	for i := 1; i <= size; i++ {
		h0 := xs[i] - xs[i-1]
		h1 := xs[i+1] - xs[i]
		sub[i-1] = h0
		diag[i-1] = 2 * (h0 + h1)
		sup[i-1] = h1
		rhs[i-1] = 6 * ((ys[i+1]-ys[i])/h1 - (ys[i]-ys[i-1])/h0)
	}

	// Forward sweep
	for i := 1; i < size; i++ {
		w := sub[i] / diag[i-1]
		diag[i] -= w * sup[i-1]
		rhs[i] -= w * rhs[i-1]
	}

	// Back substitution
	m[size] = rhs[size-1] / diag[size-1]
	for i := size - 2; i >= 0; i-- {
		m[i+1] = (rhs[i] - sup[i]*m[i+2]) / diag[i]
	}
	return m
}

// splineAt evaluates segment k of the spline at x in (xs[k], xs[k+1]).
func (c *Curve) splineAt(k int, x float64) float64 {
	x0, x1 := c.xs[k], c.xs[k+1]
	y0, y1 := c.ys[k], c.ys[k+1]
	m0, m1 := c.m[k], c.m[k+1]
	h := x1 - x0
	a := x1 - x
	b := x - x0

	return m0*a*a*a/(6*h) + m1*b*b*b/(6*h) +
		(y0/h-m0*h/6)*a + (y1/h-m1*h/6)*b
}
