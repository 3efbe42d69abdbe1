// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/backend/software"
	"github.com/gogpu/uikit/drawing"
)

// Common errors returned by Handler operations.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpu: nil device provider")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gpu: invalid dimensions")
)

var (
	providerMu     sync.RWMutex
	deviceProvider gpucontext.DeviceProvider
)

// SetDeviceProvider installs the host application's GPU device provider.
// Until a non-nil provider is set, the "gpu" backend reports itself
// unavailable and platform selection falls through to "software".
func SetDeviceProvider(p gpucontext.DeviceProvider) {
	providerMu.Lock()
	deviceProvider = p
	providerMu.Unlock()
}

// Provider returns the installed device provider, or nil.
func Provider() gpucontext.DeviceProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return deviceProvider
}

func available() bool {
	return Provider() != nil
}

func init() {
	uikit.Register("gpu", 100, func(opts uikit.HandlerOptions) (drawing.GraphicsHandler, error) {
		return New(Provider(), opts.Width, opts.Height)
	}, available)
}

// textureDestroyer matches the Destroy signature of host texture types.
type textureDestroyer interface {
	Destroy()
}

// Handler rasterizes on the CPU through the software backend and uploads
// finished frames to a GPU texture owned by the host. The texture is
// created lazily: the first Flush produces a PendingTexture holding the
// pixel data, the host realizes it into a real texture and installs it
// with AdoptTexture, and later flushes update that texture in place.
//
// Handler is NOT safe for concurrent use.
type Handler struct {
	*software.Handler

	provider gpucontext.DeviceProvider

	texture     any  // real host texture, or *PendingTexture
	oldTexture  any  // previous texture awaiting deferred destruction
	dirty       bool // frame changed since last upload
	sizeChanged bool // resize pending, texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a GPU handler. The provider should come from the host
// application, for example gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, width, height int) (*Handler, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	cpu, err := software.New(width, height)
	if err != nil {
		return nil, err
	}

	return &Handler{
		Handler:  cpu,
		provider: provider,
		width:    width,
		height:   height,
		dirty:    true, // first Flush must produce a texture
	}, nil
}

// Provider returns the device provider associated with this handler.
// Returns nil after Close.
func (h *Handler) Provider() gpucontext.DeviceProvider {
	if h.closed {
		return nil
	}
	return h.provider
}

// IsDirty reports whether the frame has changes not yet uploaded.
func (h *Handler) IsDirty() bool { return h.dirty }

// MarkDirty flags the frame for upload on the next Flush. Drawing calls
// set the flag automatically; MarkDirty covers direct Bitmap mutation.
func (h *Handler) MarkDirty() { h.dirty = true }

// Texture returns the current GPU texture without flushing. The result
// is a *PendingTexture until the host adopts a real texture, and nil
// before the first Flush.
func (h *Handler) Texture() any { return h.texture }

// AdoptTexture installs the host-created texture that replaces a
// PendingTexture. Subsequent flushes update it through
// gpucontext.TextureUpdater.
func (h *Handler) AdoptTexture(t any) {
	h.texture = t
}

// Resize changes the frame dimensions. The render target is recreated
// and cleared; the old texture is destroyed on the next Flush, after the
// host has stopped sampling it.
func (h *Handler) Resize(width, height int) error {
	if h.closed {
		return drawing.ErrGraphicsClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width == h.width && height == h.height {
		return nil
	}

	cpu, err := software.New(width, height)
	if err != nil {
		return err
	}

	h.Handler = cpu
	h.width = width
	h.height = height
	h.sizeChanged = true
	h.dirty = true
	return nil
}

// Clear implements drawing.GraphicsHandler.
func (h *Handler) Clear(c drawing.Color) {
	h.dirty = true
	h.Handler.Clear(c)
}

// DrawLine implements drawing.GraphicsHandler.
func (h *Handler) DrawLine(c drawing.Color, start, end drawing.PointF) {
	h.dirty = true
	h.Handler.DrawLine(c, start, end)
}

// DrawRectangle implements drawing.GraphicsHandler.
func (h *Handler) DrawRectangle(c drawing.Color, r drawing.RectangleF) {
	h.dirty = true
	h.Handler.DrawRectangle(c, r)
}

// FillRectangle implements drawing.GraphicsHandler.
func (h *Handler) FillRectangle(c drawing.Color, r drawing.RectangleF) {
	h.dirty = true
	h.Handler.FillRectangle(c, r)
}

// DrawEllipse implements drawing.GraphicsHandler.
func (h *Handler) DrawEllipse(c drawing.Color, r drawing.RectangleF) {
	h.dirty = true
	h.Handler.DrawEllipse(c, r)
}

// FillEllipse implements drawing.GraphicsHandler.
func (h *Handler) FillEllipse(c drawing.Color, r drawing.RectangleF) {
	h.dirty = true
	h.Handler.FillEllipse(c, r)
}

// DrawPolygon implements drawing.GraphicsHandler.
func (h *Handler) DrawPolygon(c drawing.Color, points []drawing.PointF) {
	h.dirty = true
	h.Handler.DrawPolygon(c, points)
}

// FillPolygon implements drawing.GraphicsHandler.
func (h *Handler) FillPolygon(c drawing.Color, points []drawing.PointF) {
	h.dirty = true
	h.Handler.FillPolygon(c, points)
}

// DrawImage implements drawing.GraphicsHandler.
func (h *Handler) DrawImage(img *drawing.Bitmap, at drawing.PointF) {
	h.dirty = true
	h.Handler.DrawImage(img, at)
}

// DrawImageScaled implements drawing.GraphicsHandler.
func (h *Handler) DrawImageScaled(img *drawing.Bitmap, dest drawing.RectangleF) {
	h.dirty = true
	h.Handler.DrawImageScaled(img, dest)
}

// DrawText implements drawing.GraphicsHandler.
func (h *Handler) DrawText(f drawing.Font, c drawing.Color, at drawing.PointF, s string) {
	h.dirty = true
	h.Handler.DrawText(f, c, at, s)
}

// Flush implements drawing.GraphicsHandler. It uploads the frame to the
// GPU texture if the frame changed since the last upload.
func (h *Handler) Flush() error {
	if h.closed {
		return drawing.ErrGraphicsClosed
	}

	// If the size changed, defer old texture destruction to this point.
	// The old texture may still be referenced by in-flight GPU command
	// buffers at resize time; by the next Flush the host has presented
	// at least one frame and stopped sampling it.
	if h.sizeChanged {
		if h.texture != nil {
			if h.oldTexture != nil {
				if destroyer, ok := h.oldTexture.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			h.oldTexture = h.texture
			h.texture = nil
		}
		h.sizeChanged = false
	}

	if !h.dirty && h.texture != nil {
		return nil
	}

	data := h.Bitmap().Pix()

	if h.texture == nil {
		h.texture = &PendingTexture{
			width:  h.width,
			height: h.height,
			data:   data,
		}
		h.dirty = false
		return nil
	}

	if updater, ok := h.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return fmt.Errorf("gpu: texture update failed: %w", err)
		}
	}

	h.dirty = false
	return nil
}

// Close implements drawing.GraphicsHandler. Close is idempotent.
func (h *Handler) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	if h.oldTexture != nil {
		if destroyer, ok := h.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		h.oldTexture = nil
	}
	if h.texture != nil {
		if destroyer, ok := h.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		h.texture = nil
	}

	err := h.Handler.Close()
	h.provider = nil
	return err
}

// PendingTexture is a placeholder for texture creation. It holds the
// frame data the host needs to create the real texture; the host calls
// AdoptTexture with the result.
type PendingTexture struct {
	width  int
	height int
	data   []byte
}

// Width returns the pending frame width in pixels.
func (t *PendingTexture) Width() int { return t.width }

// Height returns the pending frame height in pixels.
func (t *PendingTexture) Height() int { return t.height }

// Data returns the RGBA frame data to initialize the texture with.
func (t *PendingTexture) Data() []byte { return t.data }
