package text

import "sync"

// Direction is the primary reading direction of a text run.
type Direction uint8

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota

	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Glyph is a positioned glyph produced by shaping.
type Glyph struct {
	// ID is the glyph index in the font.
	ID GlyphID

	// Cluster is the byte index of the source text this glyph maps to.
	Cluster int

	// X and Y are the glyph origin relative to the run origin.
	X, Y float64

	// XAdvance and YAdvance are the pen advances after this glyph.
	XAdvance, YAdvance float64
}

// Shaper converts a single-direction text run into positioned glyphs.
// Implementations return nil when the text cannot be shaped (empty input,
// unparseable font).
type Shaper interface {
	Shape(text string, source *FontSource, size float64, dir Direction) []Glyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// SetShaper sets the global shaper used by Shape.
// Pass nil to reset to the default GoTextShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(text string, source *FontSource, size float64, dir Direction) []Glyph {
	return GetShaper().Shape(text, source, size, dir)
}
