package forms

import "github.com/gogpu/uikit/drawing"

// Control is a paintable element in the control tree.
type Control interface {
	// Bounds returns the control's rectangle in parent coordinates.
	Bounds() drawing.Rectangle

	// SetBounds moves and resizes the control.
	SetBounds(r drawing.Rectangle)

	// Visible reports whether the control is painted.
	Visible() bool

	// SetVisible shows or hides the control.
	SetVisible(v bool)

	// Parent returns the container holding this control, or nil for a
	// root control.
	Parent() Control

	// SetParent records the containing control. Containers call this
	// when a child is added or removed.
	SetParent(p Control)

	// Paint draws the control. The graphics origin is the control's
	// parent origin; implementations draw within Bounds.
	Paint(g *drawing.Graphics)
}

// Widget is the embeddable base for controls. It stores bounds,
// visibility, and an optional background fill, and delegates the rest of
// painting to an OnPaint callback.
type Widget struct {
	bounds     drawing.Rectangle
	background drawing.Color
	parent     Control
	hidden     bool

	// OnPaint, when set, is called after the background fill with the
	// control's bounds.
	OnPaint func(g *drawing.Graphics, bounds drawing.Rectangle)
}

// Bounds implements Control.
func (w *Widget) Bounds() drawing.Rectangle { return w.bounds }

// SetBounds implements Control.
func (w *Widget) SetBounds(r drawing.Rectangle) { w.bounds = r }

// Visible implements Control.
func (w *Widget) Visible() bool { return !w.hidden }

// SetVisible implements Control.
func (w *Widget) SetVisible(v bool) { w.hidden = !v }

// Parent implements Control.
func (w *Widget) Parent() Control { return w.parent }

// SetParent implements Control.
func (w *Widget) SetParent(p Control) { w.parent = p }

// Background returns the background fill color.
func (w *Widget) Background() drawing.Color { return w.background }

// SetBackground sets the background fill color. A fully transparent
// color disables the fill.
func (w *Widget) SetBackground(c drawing.Color) { w.background = c }

// Paint implements Control.
func (w *Widget) Paint(g *drawing.Graphics) {
	if w.hidden {
		return
	}
	if w.background.A > 0 {
		g.FillRectangle(w.background, w.bounds)
	}
	if w.OnPaint != nil {
		w.OnPaint(g, w.bounds)
	}
}
