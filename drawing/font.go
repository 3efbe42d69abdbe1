package drawing

import "fmt"

// FontStyle is a bitmask of typeface style flags.
type FontStyle uint8

const (
	// FontStyleNone is a regular, upright face.
	FontStyleNone FontStyle = 0

	// FontStyleBold selects a bold weight.
	FontStyleBold FontStyle = 1 << iota

	// FontStyleItalic selects an italic or oblique face.
	FontStyleItalic
)

// Bold reports whether the bold flag is set.
func (s FontStyle) Bold() bool { return s&FontStyleBold != 0 }

// Italic reports whether the italic flag is set.
func (s FontStyle) Italic() bool { return s&FontStyleItalic != 0 }

// Font describes a typeface by family name, size in pixels, and style.
// It is a value descriptor; resolving it to concrete glyph data is the
// backend's concern.
type Font struct {
	Family string
	Size   float64
	Style  FontStyle
}

// NewFont creates a font descriptor.
func NewFont(family string, size float64, style FontStyle) Font {
	return Font{Family: family, Size: size, Style: style}
}

// String returns a string representation of the font.
func (f Font) String() string {
	suffix := ""
	if f.Style.Bold() {
		suffix += " bold"
	}
	if f.Style.Italic() {
		suffix += " italic"
	}
	return fmt.Sprintf("%s %gpx%s", f.Family, f.Size, suffix)
}
