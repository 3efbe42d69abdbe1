package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper provides HarfBuzz-level text shaping using
// go-text/typesetting: ligature substitution, kerning pairs, and complex
// scripts including right-to-left text.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates lightweight font.Face
// instances per Shape call (font.Face is NOT safe for concurrent use).
// HarfbuzzShaper instances are pooled via sync.Pool since they also are
// not concurrent-safe.
type GoTextShaper struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects,
	// avoiding a re-parse of the font data on every Shape call.
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a shaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, source *FontSource, size float64, dir Direction) []Glyph {
	if text == "" || source == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(source)
	if err != nil {
		// Unparseable font data; callers should validate fonts upfront.
		return nil
	}

	// font.Face is NOT safe for concurrent use, so each Shape call gets
	// its own instance. font.NewFace is cheap, wrapping the thread-safe
	// *Font and initializing glyph caches.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)
	gtDir := di.DirectionLTR
	if dir == DirectionRTL {
		gtDir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: gtDir,
		Face:      goTextFace,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns a cached go-text font.Font for the given
// source, parsing and caching it on first use. font.Font is read-only
// and safe for concurrent use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock.
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	reader := bytes.NewReader(source.Data())
	goTextFace, err := font.ParseTTF(reader)
	if err != nil {
		return nil, err
	}

	// Cache the Font (thread-safe), not the Face.
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for a specific FontSource.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text, split runs by script
// before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// convertGlyphs converts go-text/typesetting output glyphs to Glyphs,
// accumulating pen advances into absolute run positions.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(glyphs))

	var x float64

	for i, g := range glyphs {
		xOff := fixedToFloat(g.XOffset)
		yOff := fixedToFloat(g.YOffset)

		adv := fixedToFloat(g.Advance)
		result[i] = Glyph{
			ID:       GlyphID(uint16(g.GlyphID)), //nolint:gosec // GlyphID is uint16 by design
			Cluster:  g.TextIndex(),
			X:        x + xOff,
			Y:        yOff,
			XAdvance: adv,
		}
		x += adv
	}

	return result
}
