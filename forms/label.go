package forms

import "github.com/gogpu/uikit/drawing"

// Label is a single line of static text.
type Label struct {
	Widget

	text      string
	font      drawing.Font
	textColor drawing.Color
}

// NewLabel creates a label with the default font and black text.
func NewLabel(text string) *Label {
	return &Label{
		text:      text,
		font:      drawing.NewFont("sans", 13, drawing.FontStyleNone),
		textColor: drawing.Black,
	}
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.text = text }

// Font returns the label font.
func (l *Label) Font() drawing.Font { return l.font }

// SetFont sets the label font.
func (l *Label) SetFont(f drawing.Font) { l.font = f }

// TextColor returns the text color.
func (l *Label) TextColor() drawing.Color { return l.textColor }

// SetTextColor sets the text color.
func (l *Label) SetTextColor(c drawing.Color) { l.textColor = c }

// SizeToFit resizes the label to its measured text size, keeping its
// location.
func (l *Label) SizeToFit(g *drawing.Graphics) {
	measured := g.MeasureString(l.font, l.text)
	b := l.Bounds()
	b.SetSize(drawing.Ceiling(drawing.RectFAt(drawing.PointF{}, measured)).Size())
	l.SetBounds(b)
}

// Paint implements Control. The baseline sits one em below the top edge,
// which keeps ascenders inside the bounds for typical faces.
func (l *Label) Paint(g *drawing.Graphics) {
	if !l.Visible() {
		return
	}
	l.Widget.Paint(g)
	if l.text == "" {
		return
	}

	b := l.Bounds()
	baseline := drawing.PtF(float64(b.Left()), float64(b.Top())+l.font.Size)
	g.DrawText(l.font, l.textColor, baseline, l.text)
}
