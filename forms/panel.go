package forms

import "github.com/gogpu/uikit/drawing"

// Padding is the space between a container's edge and its content.
type Padding struct {
	Left, Top, Right, Bottom int
}

// PaddingAll creates uniform padding on all four sides.
func PaddingAll(size int) Padding {
	return Padding{Left: size, Top: size, Right: size, Bottom: size}
}

// Horizontal returns the total horizontal padding.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns the total vertical padding.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Apply shrinks r inward by the padding. Edges never cross: a rectangle
// smaller than the padding collapses to zero size.
func (p Padding) Apply(r drawing.Rectangle) drawing.Rectangle {
	r.Normalize()
	r.SetLeft(r.Left() + p.Left)
	r.SetTop(r.Top() + p.Top)
	r.SetRight(max(r.Right()-p.Right, r.Left()))
	r.SetBottom(max(r.Bottom()-p.Bottom, r.Top()))
	return r
}

// Panel is a container holding a single content control inset by
// padding.
type Panel struct {
	Widget

	padding Padding
	content Control
}

// NewPanel creates an empty panel with the given bounds.
func NewPanel(bounds drawing.Rectangle) *Panel {
	p := &Panel{}
	p.SetBounds(bounds)
	return p
}

// Padding returns the current padding.
func (p *Panel) Padding() Padding { return p.padding }

// SetPadding sets the content inset and repositions the content.
func (p *Panel) SetPadding(pad Padding) {
	p.padding = pad
	p.layoutContent()
}

// Content returns the content control, or nil.
func (p *Panel) Content() Control { return p.content }

// SetContent installs the content control and sizes it to the content
// rectangle. Passing nil detaches the current content.
func (p *Panel) SetContent(c Control) {
	if p.content != nil {
		p.content.SetParent(nil)
	}
	p.content = c
	if c != nil {
		c.SetParent(p)
	}
	p.layoutContent()
}

// SetBounds implements Control and relayouts the content.
func (p *Panel) SetBounds(r drawing.Rectangle) {
	p.Widget.SetBounds(r)
	p.layoutContent()
}

// ContentRect returns the interior rectangle after padding, in parent
// coordinates.
func (p *Panel) ContentRect() drawing.Rectangle {
	return p.padding.Apply(p.Bounds())
}

func (p *Panel) layoutContent() {
	if p.content != nil {
		p.content.SetBounds(p.ContentRect())
	}
}

// Paint implements Control. The content is clipped to the content
// rectangle.
func (p *Panel) Paint(g *drawing.Graphics) {
	if !p.Visible() {
		return
	}
	p.Widget.Paint(g)

	if p.content == nil || !p.content.Visible() {
		return
	}

	clip := g.ClipBounds()
	g.SetClip(p.ContentRect())
	p.content.Paint(g)
	g.ResetClip()
	g.SetClipF(clip)
}
