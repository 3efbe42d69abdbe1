package drawing

import (
	"fmt"
	"math"
)

// Size represents a width and height with integer components.
// Either component may be negative; Rectangle gives meaning to the sign.
type Size struct {
	Width, Height int
}

// Sz is a convenience function to create a Size.
func Sz(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(t Size) Size {
	return Size{Width: s.Width + t.Width, Height: s.Height + t.Height}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(t Size) Size {
	return Size{Width: s.Width - t.Width, Height: s.Height - t.Height}
}

// Mul returns the size scaled by a scalar.
func (s Size) Mul(factor int) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// Div returns the size divided by a scalar, truncating toward zero.
// Division by zero panics; callers guard the divisor.
func (s Size) Div(factor int) Size {
	return Size{Width: s.Width / factor, Height: s.Height / factor}
}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(t Size) Size {
	return Size{Width: min(s.Width, t.Width), Height: min(s.Height, t.Height)}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(t Size) Size {
	return Size{Width: max(s.Width, t.Width), Height: max(s.Height, t.Height)}
}

// IsEmpty reports whether either component is zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// IsZero reports whether both components are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// ToFloat converts the size to a SizeF.
func (s Size) ToFloat() SizeF {
	return SizeF{Width: float64(s.Width), Height: float64(s.Height)}
}

// String returns a string representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// SizeF represents a width and height with float64 components.
type SizeF struct {
	Width, Height float64
}

// SzF is a convenience function to create a SizeF.
func SzF(width, height float64) SizeF {
	return SizeF{Width: width, Height: height}
}

// Add returns the component-wise sum of two sizes.
func (s SizeF) Add(t SizeF) SizeF {
	return SizeF{Width: s.Width + t.Width, Height: s.Height + t.Height}
}

// Max returns the component-wise maximum of two sizes.
func (s SizeF) Max(t SizeF) SizeF {
	return SizeF{Width: math.Max(s.Width, t.Width), Height: math.Max(s.Height, t.Height)}
}

// IsEmpty reports whether either component is zero.
func (s SizeF) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// IsZero reports whether both components are zero.
func (s SizeF) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Ceiling converts the size to integer components, rounding up.
func (s SizeF) Ceiling() Size {
	return Size{Width: int(math.Ceil(s.Width)), Height: int(math.Ceil(s.Height))}
}

// String returns a string representation of the size.
func (s SizeF) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}
