// pkg/geom/bezier.go
package geom

import "math"

// CubicBezier is a cubic Bézier curve evaluated for t in [0, 1].
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

// At returns the point of the curve at parameter t.
func (c CubicBezier) At(t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Derivative returns the tangent vector dB/dt at t.
func (c CubicBezier) Derivative(t float64) Point {
	u := 1 - t
	a := 3 * u * u
	b := 6 * u * t
	d := 3 * t * t
	return Point{
		X: a*(c.P1.X-c.P0.X) + b*(c.P2.X-c.P1.X) + d*(c.P3.X-c.P2.X),
		Y: a*(c.P1.Y-c.P0.Y) + b*(c.P2.Y-c.P1.Y) + d*(c.P3.Y-c.P2.Y),
	}
}

// Heading returns the direction of travel at t in radians.
func (c CubicBezier) Heading(t float64) float64 {
	d := c.Derivative(t)
	return math.Atan2(d.Y, d.X)
}

// Sample flattens the curve into n+1 evenly spaced (in t) points.
func (c CubicBezier) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, c.At(float64(i)/float64(n)))
	}
	return points
}
