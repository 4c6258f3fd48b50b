// Package trend builds the deterministic baseline of a generated series.
//
// A trend is described by sparse interpolation nodes, (position, value)
// pairs along the period axis. The curve passes exactly through every node
// and is evaluated at each integer period index.
//
// # Methods
//
//   - Spline: natural cubic spline (default). When every node lies on one
//     line the spline is that line, evaluated with exact linear arithmetic.
//   - Linear: piecewise linear segments between consecutive nodes.
//   - Polynomial: one interpolating polynomial, at most cubic.
//
// # Usage
//
//	nodes := []trend.Node{{X: 0, Y: 98}, {X: 300, Y: 92}, {X: 700, Y: 190}, {X: 1096, Y: 213}}
//	values, err := trend.Interpolate(nodes, 1096, trend.Spline)
//
// The node span must cover every requested index; extrapolation is refused.
package trend
