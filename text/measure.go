package text

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/uikit/drawing"
)

// Measurer computes the bounding size of a string rendered with the
// given font description.
type Measurer interface {
	Measure(font drawing.Font, text string) drawing.SizeF
}

// builtinReferenceSize is the nominal point size of basicfont.Face7x13.
// BuiltinMeasurer scales its fixed metrics linearly from this size.
const builtinReferenceSize = 13.0

// BuiltinMeasurer measures text with the embedded basicfont face.
// It needs no font files, which makes it the default for the software
// backend, but it knows nothing about kerning or non-Latin scripts.
// Use SourceMeasurer with real font data for accurate metrics.
type BuiltinMeasurer struct{}

// Measure implements the Measurer interface.
func (BuiltinMeasurer) Measure(f drawing.Font, text string) drawing.SizeF {
	if text == "" {
		return drawing.SizeF{}
	}

	face := basicfont.Face7x13
	advance := xfont.MeasureString(face, text)
	width := float64(advance) / 64.0
	height := float64(face.Metrics().Height) / 64.0

	scale := 1.0
	if f.Size > 0 {
		scale = f.Size / builtinReferenceSize
	}
	return drawing.SzF(width*scale, height*scale)
}

// SourceMeasurer measures text by shaping it against a real font file.
// Mixed-direction paragraphs are split into runs with the Unicode bidi
// algorithm before shaping, so Hebrew or Arabic embedded in Latin text
// measures correctly.
type SourceMeasurer struct {
	source *FontSource
	shaper Shaper
	base   Direction
}

// NewSourceMeasurer creates a measurer over the given font source.
// If shaper is nil the global shaper is used.
func NewSourceMeasurer(source *FontSource, shaper Shaper) (*SourceMeasurer, error) {
	if source == nil {
		return nil, ErrEmptyFontData
	}
	return &SourceMeasurer{source: source, shaper: shaper}, nil
}

// SetBaseDirection sets the paragraph default direction used when the
// text itself gives no strong hint.
func (m *SourceMeasurer) SetBaseDirection(dir Direction) { m.base = dir }

// Measure implements the Measurer interface. The width is the sum of
// glyph advances across all direction runs; the height is the em size.
func (m *SourceMeasurer) Measure(f drawing.Font, text string) drawing.SizeF {
	if text == "" {
		return drawing.SizeF{}
	}

	shaper := m.shaper
	if shaper == nil {
		shaper = GetShaper()
	}

	var width float64
	for _, seg := range SegmentParagraph(text, m.base) {
		for _, g := range shaper.Shape(seg.Text, m.source, f.Size, seg.Direction) {
			width += g.XAdvance
		}
	}

	return drawing.SzF(width, f.Size)
}
