// pkg/geom/geom.go
package geom

import "math"

// Point is a 2D coordinate in scene space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Segment is a directed line segment from P1 to P2.
type Segment struct {
	P1, P2 Point
}

// Intersection is the crossing point of the infinite lines through two segments.
// OnA and OnB report whether the point lies within the first and second finite segment.
type Intersection struct {
	Point
	OnA bool
	OnB bool
}

// Hit reports whether the intersection lies on both segments.
func (i Intersection) Hit() bool {
	return i.OnA && i.OnB
}

// Intersect solves the parametric equations of a and b.
// ok is false only when the determinant is exactly zero (parallel or collinear segments).
func Intersect(a, b Segment) (Intersection, bool) {
	dx1 := a.P2.X - a.P1.X
	dy1 := a.P2.Y - a.P1.Y
	dx2 := b.P2.X - b.P1.X
	dy2 := b.P2.Y - b.P1.Y
	cx := a.P1.X - b.P1.X
	cy := a.P1.Y - b.P1.Y

	denominator := dy2*dx1 - dx2*dy1
	if denominator == 0 {
		return Intersection{}, false
	}

	ua := (dx2*cy - dy2*cx) / denominator
	ub := (dx1*cy - dy1*cx) / denominator

	return Intersection{
		Point: Point{X: a.P1.X + ua*dx1, Y: a.P1.Y + ua*dy1},
		OnA:   ua >= 0 && ua <= 1,
		OnB:   ub >= 0 && ub <= 1,
	}, true
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
