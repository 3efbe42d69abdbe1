// Package text provides text shaping, measurement, and direction
// segmentation for uikit backends.
//
// Backends call Measure through a Measurer. The default BuiltinMeasurer
// uses a fixed bitmap face and needs no font data; SourceMeasurer shapes
// real font files through go-text/typesetting for kerning- and
// ligature-accurate metrics, splitting mixed-direction paragraphs with
// the Unicode bidi algorithm first.
package text
