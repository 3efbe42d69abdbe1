package software

import (
	"errors"
	"image"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/drawing"
	"github.com/gogpu/uikit/text"
)

// ErrInvalidSize is returned when a handler is created with non-positive
// dimensions.
var ErrInvalidSize = errors.New("software: width and height must be positive")

func init() {
	uikit.Register("software", 10, func(opts uikit.HandlerOptions) (drawing.GraphicsHandler, error) {
		return New(opts.Width, opts.Height)
	}, nil)
}

// Option configures a Handler.
type Option func(*Handler)

// WithMeasurer replaces the default text measurer.
func WithMeasurer(m text.Measurer) Option {
	return func(h *Handler) {
		if m != nil {
			h.measurer = m
		}
	}
}

// WithBitmap renders into an existing bitmap instead of allocating one.
// The bitmap's dimensions override the requested width and height.
func WithBitmap(bm *drawing.Bitmap) Option {
	return func(h *Handler) {
		if bm != nil {
			h.bitmap = bm
		}
	}
}

// Handler is the CPU rasterizing implementation of drawing.GraphicsHandler.
// It renders into a drawing.Bitmap with source-over alpha blending.
//
// Handler is NOT safe for concurrent use.
type Handler struct {
	bitmap   *drawing.Bitmap
	measurer text.Measurer

	// clip is the active clip region in device pixels, always normalized.
	clip drawing.Rectangle

	// tx, ty is the current translation; stack holds saved translations.
	tx, ty float64
	stack  []drawing.PointF

	closed bool
}

// New creates a software handler rendering into a fresh bitmap.
func New(width, height int, opts ...Option) (*Handler, error) {
	h := &Handler{
		measurer: text.BuiltinMeasurer{},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.bitmap == nil {
		if width <= 0 || height <= 0 {
			return nil, ErrInvalidSize
		}
		h.bitmap = drawing.NewBitmap(width, height)
	}
	h.clip = drawing.RectOfSize(h.bitmap.Size())
	return h, nil
}

// Bitmap returns the render target. Drawing through the handler mutates it.
func (h *Handler) Bitmap() *drawing.Bitmap { return h.bitmap }

// Snapshot returns a copy of the current render target contents.
func (h *Handler) Snapshot() *drawing.Bitmap {
	return drawing.FromImage(h.bitmap.ToImage())
}

// Size implements drawing.GraphicsHandler.
func (h *Handler) Size() drawing.Size { return h.bitmap.Size() }

// Clear implements drawing.GraphicsHandler. The clip region is ignored.
func (h *Handler) Clear(c drawing.Color) {
	if h.closed {
		return
	}
	h.bitmap.Clear(c)
}

// DrawLine implements drawing.GraphicsHandler.
func (h *Handler) DrawLine(c drawing.Color, start, end drawing.PointF) {
	if h.closed {
		return
	}
	x0, y0 := h.devicePoint(start)
	x1, y1 := h.devicePoint(end)
	h.rasterLine(c, x0, y0, x1, y1)
}

// DrawRectangle implements drawing.GraphicsHandler.
func (h *Handler) DrawRectangle(c drawing.Color, r drawing.RectangleF) {
	if h.closed {
		return
	}
	d := h.deviceRect(r)
	if d.IsEmpty() {
		return
	}
	left, top := d.Left(), d.Top()
	right, bottom := d.InnerRight(), d.InnerBottom()
	h.rasterSpan(c, left, right, top)
	if bottom != top {
		h.rasterSpan(c, left, right, bottom)
	}
	for y := top + 1; y < bottom; y++ {
		h.rasterPixel(c, left, y)
		if right != left {
			h.rasterPixel(c, right, y)
		}
	}
}

// FillRectangle implements drawing.GraphicsHandler.
func (h *Handler) FillRectangle(c drawing.Color, r drawing.RectangleF) {
	if h.closed {
		return
	}
	d := drawing.Intersect(h.deviceRect(r), h.clip)
	if d.IsEmpty() {
		return
	}
	for y := d.Top(); y <= d.InnerBottom(); y++ {
		h.rasterSpanUnclipped(c, d.Left(), d.InnerRight(), y)
	}
}

// DrawEllipse implements drawing.GraphicsHandler.
func (h *Handler) DrawEllipse(c drawing.Color, r drawing.RectangleF) {
	if h.closed {
		return
	}
	h.rasterEllipse(c, h.deviceRect(r), false)
}

// FillEllipse implements drawing.GraphicsHandler.
func (h *Handler) FillEllipse(c drawing.Color, r drawing.RectangleF) {
	if h.closed {
		return
	}
	h.rasterEllipse(c, h.deviceRect(r), true)
}

// DrawPolygon implements drawing.GraphicsHandler.
func (h *Handler) DrawPolygon(c drawing.Color, points []drawing.PointF) {
	if h.closed || len(points) < 2 {
		return
	}
	for i := 0; i < len(points); i++ {
		next := points[(i+1)%len(points)]
		x0, y0 := h.devicePoint(points[i])
		x1, y1 := h.devicePoint(next)
		h.rasterLine(c, x0, y0, x1, y1)
	}
}

// FillPolygon implements drawing.GraphicsHandler. The even-odd rule
// decides interior membership.
func (h *Handler) FillPolygon(c drawing.Color, points []drawing.PointF) {
	if h.closed || len(points) < 3 {
		return
	}
	device := make([]drawing.PointF, len(points))
	for i, p := range points {
		device[i] = drawing.PtF(p.X+h.tx, p.Y+h.ty)
	}
	h.rasterPolygon(c, device)
}

// DrawImage implements drawing.GraphicsHandler.
func (h *Handler) DrawImage(img *drawing.Bitmap, at drawing.PointF) {
	if h.closed || img == nil {
		return
	}
	ox, oy := h.devicePoint(at)
	for sy := 0; sy < img.Height(); sy++ {
		for sx := 0; sx < img.Width(); sx++ {
			h.rasterPixel(img.GetPixel(sx, sy), ox+sx, oy+sy)
		}
	}
}

// DrawImageScaled implements drawing.GraphicsHandler using
// nearest-neighbor sampling.
func (h *Handler) DrawImageScaled(img *drawing.Bitmap, dest drawing.RectangleF) {
	if h.closed || img == nil {
		return
	}
	d := h.deviceRect(dest)
	if d.IsEmpty() || img.Width() == 0 || img.Height() == 0 {
		return
	}
	dw, dh := d.Width, d.Height
	for dy := 0; dy < dh; dy++ {
		sy := dy * img.Height() / dh
		for dx := 0; dx < dw; dx++ {
			sx := dx * img.Width() / dw
			h.rasterPixel(img.GetPixel(sx, sy), d.X+dx, d.Y+dy)
		}
	}
}

// DrawText implements drawing.GraphicsHandler with the embedded
// basicfont face. The face has a single fixed size, so the requested
// font size affects measurement but not glyph rendering.
func (h *Handler) DrawText(f drawing.Font, c drawing.Color, at drawing.PointF, s string) {
	if h.closed || s == "" {
		return
	}
	x, y := h.devicePoint(at)

	// Restrict the destination view to the clip so glyphs cannot paint
	// outside it.
	dst := h.bitmap.RGBA()
	clipped := dst.SubImage(image.Rect(
		h.clip.Left(), h.clip.Top(), h.clip.Right(), h.clip.Bottom(),
	)).(*image.RGBA)

	drawer := &xfont.Drawer{
		Dst:  clipped,
		Src:  image.NewUniform(c.Std()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(s)
}

// MeasureString implements drawing.GraphicsHandler.
func (h *Handler) MeasureString(f drawing.Font, s string) drawing.SizeF {
	if h.closed {
		return drawing.SizeF{}
	}
	return h.measurer.Measure(f, s)
}

// SetClip implements drawing.GraphicsHandler. The region is given in
// current transform coordinates and intersected with the existing clip.
func (h *Handler) SetClip(r drawing.RectangleF) {
	if h.closed {
		return
	}
	h.clip = drawing.Intersect(h.clip, h.deviceRect(r))
}

// ResetClip implements drawing.GraphicsHandler.
func (h *Handler) ResetClip() {
	if h.closed {
		return
	}
	h.clip = drawing.RectOfSize(h.bitmap.Size())
}

// ClipBounds implements drawing.GraphicsHandler. The result is reported
// in current transform coordinates.
func (h *Handler) ClipBounds() drawing.RectangleF {
	if h.closed {
		return drawing.RectangleF{}
	}
	return h.clip.ToFloat().Offsetted(-h.tx, -h.ty)
}

// TranslateTransform implements drawing.GraphicsHandler.
func (h *Handler) TranslateTransform(dx, dy float64) {
	if h.closed {
		return
	}
	h.tx += dx
	h.ty += dy
}

// SaveTransform implements drawing.GraphicsHandler.
func (h *Handler) SaveTransform() {
	if h.closed {
		return
	}
	h.stack = append(h.stack, drawing.PtF(h.tx, h.ty))
}

// RestoreTransform implements drawing.GraphicsHandler. Popping an empty
// stack resets the translation to identity.
func (h *Handler) RestoreTransform() {
	if h.closed {
		return
	}
	if n := len(h.stack); n > 0 {
		saved := h.stack[n-1]
		h.stack = h.stack[:n-1]
		h.tx, h.ty = saved.X, saved.Y
		return
	}
	h.tx, h.ty = 0, 0
}

// Flush implements drawing.GraphicsHandler. All drawing is immediate, so
// Flush is a no-op.
func (h *Handler) Flush() error {
	if h.closed {
		return drawing.ErrGraphicsClosed
	}
	return nil
}

// Close implements drawing.GraphicsHandler. The bitmap stays readable
// after Close so callers can still snapshot the final frame.
func (h *Handler) Close() error {
	h.closed = true
	return nil
}

// devicePoint applies the current translation and rounds to pixel
// coordinates.
func (h *Handler) devicePoint(p drawing.PointF) (int, int) {
	return int(math.Round(p.X + h.tx)), int(math.Round(p.Y + h.ty))
}

// deviceRect applies the current translation and rounds to an integer
// device rectangle.
func (h *Handler) deviceRect(r drawing.RectangleF) drawing.Rectangle {
	return drawing.Round(r.Offsetted(h.tx, h.ty))
}
