package text

import "errors"

// ErrEmptyFontData is returned when a FontSource is created without data.
var ErrEmptyFontData = errors.New("text: empty font data")

// FontSource wraps raw font file data (TTF/OTF). Parsed representations
// are cached per source by identity, so callers should create one
// FontSource per font file and reuse it.
type FontSource struct {
	name string
	data []byte
}

// NewFontSource creates a font source from raw font file bytes.
// The name is informational only.
func NewFontSource(name string, data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return &FontSource{name: name, data: data}, nil
}

// Name returns the informational name of the source.
func (s *FontSource) Name() string { return s.name }

// Data returns the raw font file bytes.
func (s *FontSource) Data() []byte { return s.data }
