// Package trend builds deterministic baseline curves from interpolation nodes.
package trend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sartorproj/gosynth/errs"
)

// Node is a control point of the trend: the curve passes through Y at X.
type Node struct {
	X float64 // Position along the period axis
	Y float64
}

// Method selects the curve family used between nodes.
type Method int

const (
	// Spline is a natural cubic spline. Colinear nodes yield their line.
	Spline Method = iota
	// Linear joins consecutive nodes with straight segments.
	Linear
	// Polynomial is the single interpolating polynomial through all nodes.
	Polynomial
)

// MaxPolynomialNodes bounds the polynomial method to cubic curves.
const MaxPolynomialNodes = 4

func (m Method) String() string {
	switch m {
	case Spline:
		return "spline"
	case Linear:
		return "linear"
	case Polynomial:
		return "polynomial"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a method name. The empty string selects Spline.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "spline", "cubic":
		return Spline, nil
	case "linear":
		return Linear, nil
	case "polynomial", "polynom":
		return Polynomial, nil
	}
	return 0, errs.Invalid("trend_method", "unknown method %q", name)
}

// Curve is an interpolating curve over a closed node span.
type Curve struct {
	method Method
	xs     []float64
	ys     []float64
	m      []float64 // Spline second derivatives
	line   bool      // Nodes are exactly colinear
}

// NewCurve validates nodes and prepares the curve. The input slice is not
// modified; nodes may be given in any order.
func NewCurve(nodes []Node, method Method) (*Curve, error) {
	if len(nodes) < 2 {
		return nil, errs.Invalid("interpolation_nodes", "need at least 2 nodes, got %d", len(nodes))
	}
	if method < Spline || method > Polynomial {
		return nil, errs.Invalid("trend_method", "unknown method %v", method)
	}
	if method == Polynomial && len(nodes) > MaxPolynomialNodes {
		return nil, errs.Invalid("interpolation_nodes", "polynomial trend supports at most %d nodes, got %d", MaxPolynomialNodes, len(nodes))
	}

	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	for i, nd := range sorted {
		if math.IsNaN(nd.X) || math.IsInf(nd.X, 0) || math.IsNaN(nd.Y) || math.IsInf(nd.Y, 0) {
			return nil, errs.Invalid(fmt.Sprintf("interpolation_nodes[%d]", i), "node must be finite, got (%v, %v)", nd.X, nd.Y)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	c := &Curve{
		method: method,
		xs:     make([]float64, len(sorted)),
		ys:     make([]float64, len(sorted)),
	}
	for i, nd := range sorted {
		if i > 0 && nd.X <= sorted[i-1].X {
			return nil, errs.Invalid("interpolation_nodes", "duplicate node position %v", nd.X)
		}
		c.xs[i] = nd.X
		c.ys[i] = nd.Y
	}

	c.line = colinear(c.xs, c.ys)
	if method == Spline && !c.line {
		c.m = naturalSpline(c.xs, c.ys)
	}
	return c, nil
}

// Span returns the first and last node positions.
func (c *Curve) Span() (lo, hi float64) {
	return c.xs[0], c.xs[len(c.xs)-1]
}

// Colinear reports whether all nodes lie exactly on one line.
func (c *Curve) Colinear() bool {
	return c.line
}

// At evaluates the curve at x. Node positions return their node value
// exactly; positions outside the span are rejected.
func (c *Curve) At(x float64) (float64, error) {
	lo, hi := c.Span()
	if x < lo || x > hi || math.IsNaN(x) {
		return 0, errs.Invalid("interpolation_nodes", "position %v outside node span [%v, %v]", x, lo, hi)
	}

	// First node strictly right of x; k is the segment containing x.
	idx := sort.SearchFloat64s(c.xs, x)
	if idx < len(c.xs) && c.xs[idx] == x {
		return c.ys[idx], nil
	}
	k := idx - 1

	switch {
	case c.line || c.method == Linear:
		return lerp(c.xs[k], c.ys[k], c.xs[k+1], c.ys[k+1], x), nil
	case c.method == Polynomial:
		return lagrange(c.xs, c.ys, x), nil
	default:
		return c.splineAt(k, x), nil
	}
}

// Interpolate evaluates the curve through nodes at every index 0..n-1.
// The node span must cover [0, n-1].
func Interpolate(nodes []Node, n int, method Method) ([]float64, error) {
	if n <= 0 {
		return nil, errs.Invalid("n_periods", "must be positive, got %d", n)
	}
	c, err := NewCurve(nodes, method)
	if err != nil {
		return nil, err
	}
	lo, hi := c.Span()
	if lo > 0 || hi < float64(n-1) {
		return nil, errs.Invalid("interpolation_nodes", "node span [%v, %v] does not cover [0, %d]", lo, hi, n-1)
	}

	trend := make([]float64, n)
	for i := range trend {
		v, err := c.At(float64(i))
		if err != nil {
			return nil, err
		}
		trend[i] = v
	}
	return trend, nil
}

func lerp(x0, y0, x1, y1, x float64) float64 {
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// colinear compares consecutive slopes by cross-multiplication, so the test
// is exact for representable inputs.
func colinear(xs, ys []float64) bool {
	for i := 2; i < len(xs); i++ {
		dx0, dy0 := xs[i-1]-xs[i-2], ys[i-1]-ys[i-2]
		dx1, dy1 := xs[i]-xs[i-1], ys[i]-ys[i-1]
		if dy0*dx1 != dy1*dx0 {
			return false
		}
	}
	return true
}

func lagrange(xs, ys []float64, x float64) float64 {
	sum := 0.0
	for i := range xs {
		term := ys[i]
		for j := range xs {
			if j != i {
				term *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}
		sum += term
	}
	return sum
}
