package forms

import "github.com/gogpu/uikit/drawing"

// PixelLayout positions children at explicit pixel locations within its
// own coordinate space, the way a designer-generated fixed layout does.
type PixelLayout struct {
	Widget

	children []Control
}

// NewPixelLayout creates an empty layout with the given bounds.
func NewPixelLayout(bounds drawing.Rectangle) *PixelLayout {
	l := &PixelLayout{}
	l.SetBounds(bounds)
	return l
}

// Add appends a child and moves it to the given location, keeping the
// child's current size. The location is relative to the layout origin.
func (l *PixelLayout) Add(c Control, location drawing.Point) {
	b := c.Bounds()
	b.SetLocation(location)
	c.SetBounds(b)
	c.SetParent(l)
	l.children = append(l.children, c)
}

// Remove detaches a child from the layout. It reports whether the child
// was found.
func (l *PixelLayout) Remove(c Control) bool {
	for i, child := range l.children {
		if child == c {
			l.children = append(l.children[:i], l.children[i+1:]...)
			c.SetParent(nil)
			return true
		}
	}
	return false
}

// Children returns the child controls in paint order.
func (l *PixelLayout) Children() []Control { return l.children }

// ContentBounds returns the smallest rectangle enclosing all children,
// in layout coordinates. An empty layout has zero content bounds.
func (l *PixelLayout) ContentBounds() drawing.Rectangle {
	if len(l.children) == 0 {
		return drawing.Rectangle{}
	}
	bounds := l.children[0].Bounds()
	for _, c := range l.children[1:] {
		bounds = drawing.Union(bounds, c.Bounds())
	}
	return bounds
}

// Paint implements Control. Children are painted in insertion order,
// each translated into the layout's space and clipped to its bounds.
func (l *PixelLayout) Paint(g *drawing.Graphics) {
	if !l.Visible() {
		return
	}
	l.Widget.Paint(g)

	origin := l.Bounds().Location()
	for _, c := range l.children {
		if !c.Visible() {
			continue
		}
		g.SaveTransform()
		g.TranslateTransform(float64(origin.X), float64(origin.Y))

		clip := g.ClipBounds()
		g.SetClip(c.Bounds())
		c.Paint(g)
		g.ResetClip()
		g.SetClipF(clip)

		g.RestoreTransform()
	}
}
