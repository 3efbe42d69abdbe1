package text

import (
	"math"
	"testing"

	"github.com/gogpu/uikit/drawing"
)

func TestBuiltinMeasurerEmpty(t *testing.T) {
	var m BuiltinMeasurer
	got := m.Measure(drawing.NewFont("sans", 12, drawing.FontStyleNone), "")
	if !got.IsZero() {
		t.Errorf("Measure(\"\") = %v, want zero", got)
	}
}

func TestBuiltinMeasurerWidthGrowsWithText(t *testing.T) {
	var m BuiltinMeasurer
	f := drawing.NewFont("sans", 13, drawing.FontStyleNone)

	short := m.Measure(f, "ab")
	long := m.Measure(f, "abcdef")
	if long.Width <= short.Width {
		t.Errorf("width of longer string %v not greater than shorter %v", long.Width, short.Width)
	}
	if short.Height <= 0 || long.Height <= 0 {
		t.Errorf("heights must be positive, got %v and %v", short.Height, long.Height)
	}
	if short.Height != long.Height {
		t.Errorf("single-line heights differ: %v vs %v", short.Height, long.Height)
	}
}

func TestBuiltinMeasurerScalesLinearly(t *testing.T) {
	var m BuiltinMeasurer
	at13 := m.Measure(drawing.NewFont("sans", 13, drawing.FontStyleNone), "hello")
	at26 := m.Measure(drawing.NewFont("sans", 26, drawing.FontStyleNone), "hello")

	if math.Abs(at26.Width-2*at13.Width) > 1e-9 {
		t.Errorf("width at 26pt = %v, want %v", at26.Width, 2*at13.Width)
	}
	if math.Abs(at26.Height-2*at13.Height) > 1e-9 {
		t.Errorf("height at 26pt = %v, want %v", at26.Height, 2*at13.Height)
	}
}

// fixedAdvanceShaper returns one glyph per rune with a constant advance.
type fixedAdvanceShaper struct {
	advance float64
}

func (s fixedAdvanceShaper) Shape(text string, _ *FontSource, _ float64, _ Direction) []Glyph {
	runes := []rune(text)
	glyphs := make([]Glyph, len(runes))
	x := 0.0
	for i := range runes {
		glyphs[i] = Glyph{ID: GlyphID(i), Cluster: i, X: x, XAdvance: s.advance}
		x += s.advance
	}
	return glyphs
}

func TestSourceMeasurer(t *testing.T) {
	src, err := NewFontSource("test", []byte{0x00, 0x01, 0x00, 0x00})
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}

	m, err := NewSourceMeasurer(src, fixedAdvanceShaper{advance: 7})
	if err != nil {
		t.Fatalf("NewSourceMeasurer: %v", err)
	}

	f := drawing.NewFont("sans", 16, drawing.FontStyleNone)

	got := m.Measure(f, "abcd")
	want := drawing.SzF(28, 16)
	if got != want {
		t.Errorf("Measure = %v, want %v", got, want)
	}

	if got := m.Measure(f, ""); !got.IsZero() {
		t.Errorf("Measure(\"\") = %v, want zero", got)
	}
}

func TestNewSourceMeasurerNilSource(t *testing.T) {
	if _, err := NewSourceMeasurer(nil, nil); err == nil {
		t.Error("NewSourceMeasurer(nil) succeeded, want error")
	}
}

func TestNewFontSourceEmpty(t *testing.T) {
	if _, err := NewFontSource("empty", nil); err != ErrEmptyFontData {
		t.Errorf("err = %v, want ErrEmptyFontData", err)
	}
}

func TestSetShaperNilResetsDefault(t *testing.T) {
	orig := GetShaper()
	defer SetShaper(orig)

	SetShaper(fixedAdvanceShaper{advance: 1})
	if _, ok := GetShaper().(fixedAdvanceShaper); !ok {
		t.Fatal("SetShaper did not install custom shaper")
	}

	SetShaper(nil)
	if _, ok := GetShaper().(*GoTextShaper); !ok {
		t.Errorf("SetShaper(nil) installed %T, want *GoTextShaper", GetShaper())
	}
}
