package drawing

import (
	"fmt"
	"math"
)

// Point represents a 2D point with integer coordinates.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddSize returns the point translated by a size.
func (p Point) AddSize(s Size) Point {
	return Point{X: p.X + s.Width, Y: p.Y + s.Height}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar, truncating toward zero.
// Division by zero panics; callers guard the divisor.
func (p Point) Div(s int) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Min returns the component-wise minimum of two points.
func (p Point) Min(q Point) Point {
	return Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of two points.
func (p Point) Max(q Point) Point {
	return Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// In reports whether the point is contained in the rectangle.
func (p Point) In(r Rectangle) bool {
	return r.Contains(p.X, p.Y)
}

// IsZero reports whether both coordinates are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// ToFloat converts the point to a PointF.
func (p Point) ToFloat() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// PointF represents a 2D point or vector with float64 coordinates.
type PointF struct {
	X, Y float64
}

// PtF is a convenience function to create a PointF.
func PtF(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p PointF) Add(q PointF) PointF {
	return PointF{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p PointF) Sub(q PointF) PointF {
	return PointF{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p PointF) Mul(s float64) PointF {
	return PointF{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p PointF) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p PointF) Distance(q PointF) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p PointF) Lerp(q PointF, t float64) PointF {
	return PointF{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Round converts the point to integer coordinates, rounding half away
// from zero.
func (p PointF) Round() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Truncate converts the point to integer coordinates, truncating toward zero.
func (p PointF) Truncate() Point {
	return Point{X: int(p.X), Y: int(p.Y)}
}

// String returns a string representation of the point.
func (p PointF) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}
