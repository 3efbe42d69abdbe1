package drawing

import (
	"fmt"
	"math"
)

// innerOffset is the distance between the exclusive Right/Bottom edge and
// the inclusive InnerRight/InnerBottom edge when the corresponding
// dimension is positive.
const innerOffset = 1

// Rectangle is an axis-aligned rectangle with integer coordinates, stored
// as a location (X, Y) and a size (Width, Height).
//
// Width and Height may be negative, in which case the rectangle extends
// left or up from its location. Nothing normalizes the sign at
// construction; instead the logical edge accessors (Left, Top, Right,
// Bottom) account for it, so callers always observe correct edges
// regardless of the stored sign.
//
// Right and Bottom are exclusive bounds (one past the last contained
// coordinate); InnerRight and InnerBottom are the inclusive bounds.
//
// Rectangle is a value type: it is copied on assignment, and the mutating
// methods (Offset, Inflate, Align, Normalize, Restrict, and the edge
// setters) operate on the receiver in place.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// NewRectangle creates a rectangle from a location and dimensions.
func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// RectOfSize creates a rectangle of the given size located at the origin.
func RectOfSize(size Size) Rectangle {
	return Rectangle{Width: size.Width, Height: size.Height}
}

// RectAt creates a rectangle from a location and a size.
func RectAt(location Point, size Size) Rectangle {
	return Rectangle{X: location.X, Y: location.Y, Width: size.Width, Height: size.Height}
}

// RectFromPoints creates a rectangle spanning two corner points.
// When end is to the right of (or below) start, end is treated as the
// inclusive last contained coordinate; otherwise the resulting dimension
// is negative and end becomes the exclusive corner.
func RectFromPoints(start, end Point) Rectangle {
	r := Rectangle{X: start.X, Y: start.Y}
	r.Width = end.X - start.X
	if r.Width >= 0 {
		r.Width += innerOffset
	}
	r.Height = end.Y - start.Y
	if r.Height >= 0 {
		r.Height += innerOffset
	}
	return r
}

// FromSides creates a rectangle from its exclusive edge coordinates.
// For right >= left and bottom >= top, reading Left, Top, Right and Bottom
// back yields exactly the inputs.
func FromSides(left, top, right, bottom int) Rectangle {
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Location returns the stored location (not necessarily the top-left
// corner; see Left and Top).
func (r Rectangle) Location() Point {
	return Point{X: r.X, Y: r.Y}
}

// SetLocation moves the rectangle's stored location, keeping its size.
func (r *Rectangle) SetLocation(p Point) {
	r.X = p.X
	r.Y = p.Y
}

// Size returns the stored size, sign included.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// SetSize replaces the rectangle's size, keeping its location.
func (r *Rectangle) SetSize(s Size) {
	r.Width = s.Width
	r.Height = s.Height
}

// Left returns the logical left edge: X when Width is non-negative,
// X+Width otherwise.
func (r Rectangle) Left() int {
	if r.Width >= 0 {
		return r.X
	}
	return r.X + r.Width
}

// SetLeft moves the logical left edge. With non-negative Width the
// exclusive Right edge stays put and Width is clamped at zero rather than
// going negative; with negative Width the width is redefined directly and
// the stored location is unchanged.
func (r *Rectangle) SetLeft(v int) {
	if r.Width >= 0 {
		r.Width += r.X - v
		r.X = v
		if r.Width < 0 {
			r.Width = 0
		}
	} else {
		r.Width = v - r.X
	}
}

// Top returns the logical top edge: Y when Height is non-negative,
// Y+Height otherwise.
func (r Rectangle) Top() int {
	if r.Height >= 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// SetTop moves the logical top edge; see SetLeft for the clamping rules.
func (r *Rectangle) SetTop(v int) {
	if r.Height >= 0 {
		r.Height += r.Y - v
		r.Y = v
		if r.Height < 0 {
			r.Height = 0
		}
	} else {
		r.Height = v - r.Y
	}
}

// Right returns the exclusive right edge: X+Width when Width is
// non-negative, one past the stored location otherwise.
func (r Rectangle) Right() int {
	if r.Width >= 0 {
		return r.X + r.Width
	}
	return r.X + innerOffset
}

// SetRight moves the exclusive right edge. With non-negative Width the
// left edge stays put unless the new edge crosses it, in which case the
// rectangle collapses at v; with negative Width the far edge X+Width
// stays put.
func (r *Rectangle) SetRight(v int) {
	if r.Width >= 0 {
		r.Width = v - r.X
		if r.Width < 0 {
			r.X += r.Width
			r.Width = 0
		}
	} else {
		r.Width += r.X + innerOffset - v
		r.X = v - innerOffset
	}
}

// Bottom returns the exclusive bottom edge: Y+Height when Height is
// non-negative, one past the stored location otherwise.
func (r Rectangle) Bottom() int {
	if r.Height >= 0 {
		return r.Y + r.Height
	}
	return r.Y + innerOffset
}

// SetBottom moves the exclusive bottom edge; see SetRight for the rules.
func (r *Rectangle) SetBottom(v int) {
	if r.Height >= 0 {
		r.Height = v - r.Y
		if r.Height < 0 {
			r.Y += r.Height
			r.Height = 0
		}
	} else {
		r.Height += r.Y + innerOffset - v
		r.Y = v - innerOffset
	}
}

// InnerRight returns the inclusive right edge: the last contained X
// coordinate when Width is positive, the stored X otherwise.
func (r Rectangle) InnerRight() int {
	if r.Width > 0 {
		return r.X + r.Width - innerOffset
	}
	return r.X
}

// SetInnerRight moves the inclusive right edge.
func (r *Rectangle) SetInnerRight(v int) {
	r.SetRight(v + innerOffset)
}

// InnerBottom returns the inclusive bottom edge: the last contained Y
// coordinate when Height is positive, the stored Y otherwise.
func (r Rectangle) InnerBottom() int {
	if r.Height > 0 {
		return r.Y + r.Height - innerOffset
	}
	return r.Y
}

// SetInnerBottom moves the inclusive bottom edge.
func (r *Rectangle) SetInnerBottom(v int) {
	r.SetBottom(v + innerOffset)
}

// TopLeft returns the logical top-left corner.
func (r Rectangle) TopLeft() Point {
	return Point{X: r.Left(), Y: r.Top()}
}

// SetTopLeft moves the logical top-left corner.
func (r *Rectangle) SetTopLeft(p Point) {
	r.SetLeft(p.X)
	r.SetTop(p.Y)
}

// TopRight returns the corner at the exclusive right and logical top edges.
func (r Rectangle) TopRight() Point {
	return Point{X: r.Right(), Y: r.Top()}
}

// SetTopRight moves the exclusive-right/top corner.
func (r *Rectangle) SetTopRight(p Point) {
	r.SetRight(p.X)
	r.SetTop(p.Y)
}

// BottomLeft returns the corner at the logical left and exclusive bottom edges.
func (r Rectangle) BottomLeft() Point {
	return Point{X: r.Left(), Y: r.Bottom()}
}

// SetBottomLeft moves the left/exclusive-bottom corner.
func (r *Rectangle) SetBottomLeft(p Point) {
	r.SetLeft(p.X)
	r.SetBottom(p.Y)
}

// BottomRight returns the corner at the exclusive right and bottom edges.
func (r Rectangle) BottomRight() Point {
	return Point{X: r.Right(), Y: r.Bottom()}
}

// SetBottomRight moves the exclusive bottom-right corner.
func (r *Rectangle) SetBottomRight(p Point) {
	r.SetRight(p.X)
	r.SetBottom(p.Y)
}

// EndLocation returns the inclusive end point when the rectangle grows
// positively (X+Width-1, Y+Height-1), and the exclusive corner when the
// corresponding dimension is zero or negative.
func (r Rectangle) EndLocation() Point {
	p := Point{X: r.X + r.Width, Y: r.Y + r.Height}
	if r.Width > 0 {
		p.X -= innerOffset
	}
	if r.Height > 0 {
		p.Y -= innerOffset
	}
	return p
}

// SetEndLocation recomputes Width and Height from a new end point, with
// the same inclusive/exclusive asymmetry as EndLocation.
func (r *Rectangle) SetEndLocation(p Point) {
	r.Width = p.X - r.X
	if r.Width >= 0 {
		r.Width += innerOffset
	}
	r.Height = p.Y - r.Y
	if r.Height >= 0 {
		r.Height += innerOffset
	}
}

// MiddleX returns the truncating integer midpoint of the X axis.
func (r Rectangle) MiddleX() int {
	return r.X + r.Width/2
}

// SetMiddleX moves X so the midpoint lands on v. Because the midpoint
// truncates, this is not lossless for odd widths.
func (r *Rectangle) SetMiddleX(v int) {
	r.X = v - r.Width/2
}

// MiddleY returns the truncating integer midpoint of the Y axis.
func (r Rectangle) MiddleY() int {
	return r.Y + r.Height/2
}

// SetMiddleY moves Y so the midpoint lands on v; see SetMiddleX.
func (r *Rectangle) SetMiddleY(v int) {
	r.Y = v - r.Height/2
}

// Center returns the truncating integer midpoint of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.MiddleX(), Y: r.MiddleY()}
}

// SetCenter moves the rectangle so its midpoint lands on p.
func (r *Rectangle) SetCenter(p Point) {
	r.SetMiddleX(p.X)
	r.SetMiddleY(p.Y)
}

// IsEmpty reports whether either dimension is zero.
func (r Rectangle) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// IsZero reports whether location and size are all zero.
func (r Rectangle) IsZero() bool {
	return r == Rectangle{}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// A rectangle with zero Width or Height contains nothing. The test is
// inclusive on all four logical edges, i.e. x in [Left, InnerRight] and
// y in [Top, InnerBottom].
func (r Rectangle) Contains(x, y int) bool {
	if r.Width == 0 || r.Height == 0 {
		return false
	}
	return x >= r.Left() && x <= r.InnerRight() &&
		y >= r.Top() && y <= r.InnerBottom()
}

// ContainsPoint reports whether p lies inside the rectangle.
func (r Rectangle) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// ContainsRect reports whether the other rectangle is fully enclosed by
// this one, comparing logical edges with exclusive Right/Bottom bounds.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	return r.Left() <= o.Left() && r.Top() <= o.Top() &&
		r.Right() >= o.Right() && r.Bottom() >= o.Bottom()
}

// Intersects reports whether the two rectangles overlap. The test uses
// the raw location and size rather than the logical edges, so results
// are only meaningful when both rectangles have non-negative Width and
// Height. Kept for compatibility; use Intersect for sign-safe results.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Intersect returns the overlapping region of a and b computed on logical
// edges, or a zero Rectangle when they do not overlap.
func Intersect(a, b Rectangle) Rectangle {
	left := max(a.Left(), b.Left())
	top := max(a.Top(), b.Top())
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())
	if right <= left || bottom <= top {
		return Rectangle{}
	}
	return FromSides(left, top, right, bottom)
}

// Union returns the smallest rectangle enclosing both inputs: the minimum
// of the Left/Top edges and the maximum of the Right/Bottom edges.
func Union(a, b Rectangle) Rectangle {
	return FromSides(
		min(a.Left(), b.Left()),
		min(a.Top(), b.Top()),
		max(a.Right(), b.Right()),
		max(a.Bottom(), b.Bottom()),
	)
}

// UnionWith grows the rectangle to enclose o.
func (r *Rectangle) UnionWith(o Rectangle) {
	*r = Union(*r, o)
}

// Normalize rewrites a rectangle with negative Width or Height into one
// with non-negative dimensions covering the same coordinates. The new
// dimension is old_X-new_X+1 (note the off-by-one bias, which matches the
// exclusive Right/Bottom edge of the negative form). Idempotent once both
// dimensions are non-negative.
func (r *Rectangle) Normalize() {
	if r.Width < 0 {
		x := r.X
		r.X += r.Width
		r.Width = x - r.X + innerOffset
	}
	if r.Height < 0 {
		y := r.Y
		r.Y += r.Height
		r.Height = y - r.Y + innerOffset
	}
}

// Offset translates the rectangle's location by (dx, dy).
func (r *Rectangle) Offset(dx, dy int) {
	r.X += dx
	r.Y += dy
}

// OffsetPoint translates the rectangle's location by p.
func (r *Rectangle) OffsetPoint(p Point) {
	r.Offset(p.X, p.Y)
}

// OffsetSize translates the rectangle's location by s.
func (r *Rectangle) OffsetSize(s Size) {
	r.Offset(s.Width, s.Height)
}

// Offsetted returns a copy of the rectangle translated by (dx, dy).
func (r Rectangle) Offsetted(dx, dy int) Rectangle {
	r.Offset(dx, dy)
	return r
}

// Inflate grows each edge outward by width horizontally and height
// vertically (or shrinks, for negative arguments), for a total change of
// 2*width and 2*height. The direction of the location adjustment follows
// the sign of the stored dimension, mirroring the Left/Top asymmetry.
func (r *Rectangle) Inflate(width, height int) {
	if r.Width >= 0 {
		r.X -= width
		r.Width += width * 2
	} else {
		r.X += width
		r.Width -= width * 2
	}
	if r.Height >= 0 {
		r.Y -= height
		r.Height += height * 2
	} else {
		r.Y += height
		r.Height -= height * 2
	}
}

// Inflated returns a copy of the rectangle inflated by (width, height).
func (r Rectangle) Inflated(width, height int) Rectangle {
	r.Inflate(width, height)
	return r
}

// Align snaps the rectangle outward to a pixel grid: Left and Top move
// down to the nearest lower multiple of the grid, Right and Bottom move
// up to the nearest multiple at or beyond their current value. Edges
// already on the grid stay put. Negative coordinates snap away from the
// origin (floored modulus), so alignment is translation-consistent.
func (r *Rectangle) Align(gridWidth, gridHeight int) {
	r.SetTop(r.Top() - floorMod(r.Top(), gridHeight))
	r.SetLeft(r.Left() - floorMod(r.Left(), gridWidth))
	r.SetRight(r.Right() + (gridWidth-floorMod(r.Right(), gridWidth))%gridWidth)
	r.SetBottom(r.Bottom() + (gridHeight-floorMod(r.Bottom(), gridHeight))%gridHeight)
}

// AlignSize is Align with the grid given as a Size.
func (r *Rectangle) AlignSize(grid Size) {
	r.Align(grid.Width, grid.Height)
}

// Restrict clamps each logical edge inward so the rectangle does not
// extend past bound. It only ever shrinks the rectangle.
func (r *Rectangle) Restrict(bound Rectangle) {
	if r.Left() < bound.Left() {
		r.SetLeft(bound.Left())
	}
	if r.Top() < bound.Top() {
		r.SetTop(bound.Top())
	}
	if r.Right() > bound.Right() {
		r.SetRight(bound.Right())
	}
	if r.Bottom() > bound.Bottom() {
		r.SetBottom(bound.Bottom())
	}
}

// Restricted returns a copy of the rectangle clamped to bound.
func (r Rectangle) Restricted(bound Rectangle) Rectangle {
	r.Restrict(bound)
	return r
}

// Mul scales location and size independently by a scalar.
func (r Rectangle) Mul(factor int) Rectangle {
	return Rectangle{
		X:      r.X * factor,
		Y:      r.Y * factor,
		Width:  r.Width * factor,
		Height: r.Height * factor,
	}
}

// Div divides location and size independently by a scalar.
// Dividing by zero panics; callers own the contract.
func (r Rectangle) Div(factor int) Rectangle {
	return Rectangle{
		X:      r.X / factor,
		Y:      r.Y / factor,
		Width:  r.Width / factor,
		Height: r.Height / factor,
	}
}

// MulSize scales the horizontal components by s.Width and the vertical
// components by s.Height.
func (r Rectangle) MulSize(s Size) Rectangle {
	return Rectangle{
		X:      r.X * s.Width,
		Y:      r.Y * s.Height,
		Width:  r.Width * s.Width,
		Height: r.Height * s.Height,
	}
}

// DivSize divides the horizontal components by s.Width and the vertical
// components by s.Height. A zero component panics; callers own the contract.
func (r Rectangle) DivSize(s Size) Rectangle {
	return Rectangle{
		X:      r.X / s.Width,
		Y:      r.Y / s.Height,
		Width:  r.Width / s.Width,
		Height: r.Height / s.Height,
	}
}

// ToFloat converts the rectangle to a RectangleF, preserving any negative
// dimensions.
func (r Rectangle) ToFloat() RectangleF {
	return RectangleF{
		X:      float64(r.X),
		Y:      float64(r.Y),
		Width:  float64(r.Width),
		Height: float64(r.Height),
	}
}

// Round converts a RectangleF to a Rectangle by rounding all four
// components half away from zero.
func Round(r RectangleF) Rectangle {
	return Rectangle{
		X:      int(math.Round(r.X)),
		Y:      int(math.Round(r.Y)),
		Width:  int(math.Round(r.Width)),
		Height: int(math.Round(r.Height)),
	}
}

// Ceiling converts a RectangleF to a Rectangle by truncating the location
// and rounding the size up, preserving the bounding extent of the size.
func Ceiling(r RectangleF) Rectangle {
	return Rectangle{
		X:      int(r.X),
		Y:      int(r.Y),
		Width:  int(math.Ceil(r.Width)),
		Height: int(math.Ceil(r.Height)),
	}
}

// Truncate converts a RectangleF to a Rectangle by truncating all four
// components toward zero.
func Truncate(r RectangleF) Rectangle {
	return Rectangle{
		X:      int(r.X),
		Y:      int(r.Y),
		Width:  int(r.Width),
		Height: int(r.Height),
	}
}

// String returns a string representation of the rectangle.
func (r Rectangle) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// floorMod returns the floored modulus of v and m, non-negative for
// positive m regardless of the sign of v. Go's % truncates toward zero,
// which would snap negative edges toward the origin instead of down the
// grid.
func floorMod(v, m int) int {
	result := v % m
	if result != 0 && (result < 0) != (m < 0) {
		result += m
	}
	return result
}
