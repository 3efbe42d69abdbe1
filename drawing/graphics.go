package drawing

import "errors"

// ErrGraphicsClosed is returned when operations are attempted on a closed
// Graphics.
var ErrGraphicsClosed = errors.New("drawing: graphics is closed")

// GraphicsHandler is the platform binding behind a Graphics. Each backend
// implements it against its rendering target (a Bitmap for the software
// backend, a GPU texture for the gpu backend, a native canvas for an OS
// toolkit binding).
//
// Handlers receive coordinates already normalized: rectangle arguments
// always have non-negative Width and Height.
//
// Handlers are NOT safe for concurrent use. Each handler should be used
// from a single goroutine, or external synchronization must be used.
type GraphicsHandler interface {
	// Size returns the target dimensions in pixels.
	Size() Size

	// Clear fills the entire target with the given color, ignoring the
	// clip region.
	Clear(c Color)

	// DrawLine draws a one-pixel line between two points.
	DrawLine(c Color, start, end PointF)

	// DrawRectangle outlines a rectangle.
	DrawRectangle(c Color, r RectangleF)

	// FillRectangle fills a rectangle.
	FillRectangle(c Color, r RectangleF)

	// DrawEllipse outlines the ellipse inscribed in r.
	DrawEllipse(c Color, r RectangleF)

	// FillEllipse fills the ellipse inscribed in r.
	FillEllipse(c Color, r RectangleF)

	// DrawPolygon outlines a closed polygon.
	DrawPolygon(c Color, points []PointF)

	// FillPolygon fills a closed polygon using the even-odd rule.
	FillPolygon(c Color, points []PointF)

	// DrawImage draws a bitmap with its top-left corner at the given point.
	DrawImage(img *Bitmap, at PointF)

	// DrawImageScaled draws a bitmap scaled into the destination rectangle.
	DrawImageScaled(img *Bitmap, dest RectangleF)

	// DrawText draws a single line of text with its baseline origin at
	// the given point.
	DrawText(font Font, c Color, at PointF, text string)

	// MeasureString returns the layout size of a single line of text.
	MeasureString(font Font, text string) SizeF

	// SetClip restricts subsequent drawing to the given rectangle,
	// intersected with any existing clip.
	SetClip(r RectangleF)

	// ResetClip removes the clip region.
	ResetClip()

	// ClipBounds returns the current clip rectangle, or the full target
	// bounds when no clip is set.
	ClipBounds() RectangleF

	// TranslateTransform offsets all subsequent drawing by (dx, dy).
	TranslateTransform(dx, dy float64)

	// SaveTransform pushes the current transform onto a stack.
	SaveTransform()

	// RestoreTransform pops the most recently saved transform.
	RestoreTransform()

	// Flush completes all pending drawing operations. For CPU targets
	// this is typically a no-op; GPU targets may upload here.
	Flush() error

	// Close releases resources held by the handler. Close is idempotent.
	Close() error
}

// Graphics is the platform-neutral drawing front-end. It validates and
// converts arguments, normalizes negative-size rectangles through the
// logical edge accessors, and forwards every call to its GraphicsHandler.
//
// Graphics is NOT safe for concurrent use.
type Graphics struct {
	handler GraphicsHandler
	closed  bool
}

// NewGraphics wraps a platform handler. Most code obtains a Graphics from
// uikit.NewGraphics instead of calling this directly.
func NewGraphics(handler GraphicsHandler) *Graphics {
	return &Graphics{handler: handler}
}

// Handler returns the underlying platform handler, or nil after Close.
func (g *Graphics) Handler() GraphicsHandler {
	if g.closed {
		return nil
	}
	return g.handler
}

// Size returns the target dimensions in pixels.
func (g *Graphics) Size() Size {
	if g.closed {
		return Size{}
	}
	return g.handler.Size()
}

// Bounds returns the full target rectangle at the origin.
func (g *Graphics) Bounds() Rectangle {
	return RectOfSize(g.Size())
}

// Clear fills the entire target with the given color.
func (g *Graphics) Clear(c Color) {
	if g.closed {
		return
	}
	g.handler.Clear(c)
}

// DrawLine draws a one-pixel line between two points.
func (g *Graphics) DrawLine(c Color, start, end PointF) {
	if g.closed {
		return
	}
	g.handler.DrawLine(c, start, end)
}

// DrawRectangle outlines a rectangle. Negative Width or Height is
// normalized before reaching the handler.
func (g *Graphics) DrawRectangle(c Color, r Rectangle) {
	g.DrawRectangleF(c, logicalRectF(r))
}

// DrawRectangleF outlines a float rectangle.
func (g *Graphics) DrawRectangleF(c Color, r RectangleF) {
	if g.closed {
		return
	}
	g.handler.DrawRectangle(c, r)
}

// FillRectangle fills a rectangle. Negative Width or Height is normalized
// before reaching the handler.
func (g *Graphics) FillRectangle(c Color, r Rectangle) {
	g.FillRectangleF(c, logicalRectF(r))
}

// FillRectangleF fills a float rectangle.
func (g *Graphics) FillRectangleF(c Color, r RectangleF) {
	if g.closed {
		return
	}
	g.handler.FillRectangle(c, r)
}

// DrawEllipse outlines the ellipse inscribed in r.
func (g *Graphics) DrawEllipse(c Color, r Rectangle) {
	if g.closed {
		return
	}
	g.handler.DrawEllipse(c, logicalRectF(r))
}

// FillEllipse fills the ellipse inscribed in r.
func (g *Graphics) FillEllipse(c Color, r Rectangle) {
	if g.closed {
		return
	}
	g.handler.FillEllipse(c, logicalRectF(r))
}

// DrawPolygon outlines a closed polygon. Fewer than two points is a no-op.
func (g *Graphics) DrawPolygon(c Color, points []PointF) {
	if g.closed || len(points) < 2 {
		return
	}
	g.handler.DrawPolygon(c, points)
}

// FillPolygon fills a closed polygon. Fewer than three points is a no-op.
func (g *Graphics) FillPolygon(c Color, points []PointF) {
	if g.closed || len(points) < 3 {
		return
	}
	g.handler.FillPolygon(c, points)
}

// DrawImage draws a bitmap with its top-left corner at the given point.
func (g *Graphics) DrawImage(img *Bitmap, at PointF) {
	if g.closed || img == nil {
		return
	}
	g.handler.DrawImage(img, at)
}

// DrawImageScaled draws a bitmap scaled into the destination rectangle.
func (g *Graphics) DrawImageScaled(img *Bitmap, dest Rectangle) {
	if g.closed || img == nil {
		return
	}
	g.handler.DrawImageScaled(img, logicalRectF(dest))
}

// DrawText draws a single line of text with its baseline origin at the
// given point.
func (g *Graphics) DrawText(font Font, c Color, at PointF, text string) {
	if g.closed || text == "" {
		return
	}
	g.handler.DrawText(font, c, at, text)
}

// MeasureString returns the layout size of a single line of text.
func (g *Graphics) MeasureString(font Font, text string) SizeF {
	if g.closed || text == "" {
		return SizeF{}
	}
	return g.handler.MeasureString(font, text)
}

// SetClip restricts subsequent drawing to r, intersected with any
// existing clip. Negative Width or Height is normalized.
func (g *Graphics) SetClip(r Rectangle) {
	if g.closed {
		return
	}
	g.handler.SetClip(logicalRectF(r))
}

// SetClipF restricts subsequent drawing to a float rectangle.
func (g *Graphics) SetClipF(r RectangleF) {
	if g.closed {
		return
	}
	g.handler.SetClip(r)
}

// ResetClip removes the clip region.
func (g *Graphics) ResetClip() {
	if g.closed {
		return
	}
	g.handler.ResetClip()
}

// ClipBounds returns the current clip rectangle.
func (g *Graphics) ClipBounds() RectangleF {
	if g.closed {
		return RectangleF{}
	}
	return g.handler.ClipBounds()
}

// TranslateTransform offsets all subsequent drawing by (dx, dy).
func (g *Graphics) TranslateTransform(dx, dy float64) {
	if g.closed {
		return
	}
	g.handler.TranslateTransform(dx, dy)
}

// SaveTransform pushes the current transform onto a stack.
func (g *Graphics) SaveTransform() {
	if g.closed {
		return
	}
	g.handler.SaveTransform()
}

// RestoreTransform pops the most recently saved transform.
func (g *Graphics) RestoreTransform() {
	if g.closed {
		return
	}
	g.handler.RestoreTransform()
}

// Flush completes all pending drawing operations.
func (g *Graphics) Flush() error {
	if g.closed {
		return ErrGraphicsClosed
	}
	return g.handler.Flush()
}

// Close releases the handler. Close is idempotent.
func (g *Graphics) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	return g.handler.Close()
}

// logicalRectF converts an integer rectangle to float coordinates using
// the logical edges, so a rectangle stored with negative Width or Height
// covers the same pixels as its normalized form.
func logicalRectF(r Rectangle) RectangleF {
	return FromSidesF(
		float64(r.Left()),
		float64(r.Top()),
		float64(r.Right()),
		float64(r.Bottom()),
	)
}
