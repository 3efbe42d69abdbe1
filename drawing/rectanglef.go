package drawing

import "fmt"

// RectangleF is an axis-aligned rectangle with float64 coordinates.
// Like Rectangle, it stores a location and a size, and Width or Height
// may be negative. In float space there is no inner offset: Right and
// Bottom are simply the greater edge of the covered interval.
type RectangleF struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangleF creates a rectangle from a location and dimensions.
func NewRectangleF(x, y, width, height float64) RectangleF {
	return RectangleF{X: x, Y: y, Width: width, Height: height}
}

// RectFAt creates a RectangleF from a location and a size.
func RectFAt(location PointF, size SizeF) RectangleF {
	return RectangleF{X: location.X, Y: location.Y, Width: size.Width, Height: size.Height}
}

// FromSidesF creates a RectangleF from its edge coordinates.
func FromSidesF(left, top, right, bottom float64) RectangleF {
	return RectangleF{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Location returns the stored location.
func (r RectangleF) Location() PointF {
	return PointF{X: r.X, Y: r.Y}
}

// Size returns the stored size, sign included.
func (r RectangleF) Size() SizeF {
	return SizeF{Width: r.Width, Height: r.Height}
}

// Left returns the lesser X edge.
func (r RectangleF) Left() float64 {
	if r.Width >= 0 {
		return r.X
	}
	return r.X + r.Width
}

// Top returns the lesser Y edge.
func (r RectangleF) Top() float64 {
	if r.Height >= 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Right returns the greater X edge.
func (r RectangleF) Right() float64 {
	if r.Width >= 0 {
		return r.X + r.Width
	}
	return r.X
}

// Bottom returns the greater Y edge.
func (r RectangleF) Bottom() float64 {
	if r.Height >= 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Center returns the midpoint of the rectangle.
func (r RectangleF) Center() PointF {
	return PointF{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether either dimension is zero.
func (r RectangleF) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains reports whether the point (x, y) lies inside the rectangle,
// inclusive of the Left/Top edges and exclusive of Right/Bottom.
func (r RectangleF) Contains(x, y float64) bool {
	if r.IsEmpty() {
		return false
	}
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Intersects reports whether the two rectangles overlap.
func (r RectangleF) Intersects(o RectangleF) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// IntersectF returns the overlapping region of a and b, or a zero
// RectangleF when they do not overlap.
func IntersectF(a, b RectangleF) RectangleF {
	left := maxf(a.Left(), b.Left())
	top := maxf(a.Top(), b.Top())
	right := minf(a.Right(), b.Right())
	bottom := minf(a.Bottom(), b.Bottom())
	if right <= left || bottom <= top {
		return RectangleF{}
	}
	return FromSidesF(left, top, right, bottom)
}

// UnionF returns the smallest rectangle enclosing both inputs.
func UnionF(a, b RectangleF) RectangleF {
	return FromSidesF(
		minf(a.Left(), b.Left()),
		minf(a.Top(), b.Top()),
		maxf(a.Right(), b.Right()),
		maxf(a.Bottom(), b.Bottom()),
	)
}

// Offset translates the rectangle's location by (dx, dy).
func (r *RectangleF) Offset(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Offsetted returns a copy of the rectangle translated by (dx, dy).
func (r RectangleF) Offsetted(dx, dy float64) RectangleF {
	r.Offset(dx, dy)
	return r
}

// Inflate grows each edge outward by width horizontally and height
// vertically, following the sign of the stored dimension.
func (r *RectangleF) Inflate(width, height float64) {
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

// String returns a string representation of the rectangle.
func (r RectangleF) String() string {
	return fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.Width, r.Height)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
