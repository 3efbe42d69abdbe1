package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/drawing"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := New(NullDeviceHandle{}, 8, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, 8, 8); err != ErrNilProvider {
		t.Errorf("New(nil provider) err = %v, want ErrNilProvider", err)
	}
	if _, err := New(NullDeviceHandle{}, 0, 8); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New(0, 8) err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := New(NullDeviceHandle{}, 8, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New(8, -1) err = %v, want ErrInvalidDimensions", err)
	}
}

func TestUnavailableWithoutProvider(t *testing.T) {
	SetDeviceProvider(nil)

	_, err := uikit.NewGraphicsByName("gpu", 8, 8)
	var unavailable *uikit.PlatformUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want PlatformUnavailableError", err)
	}

	SetDeviceProvider(NullDeviceHandle{})
	defer SetDeviceProvider(nil)

	g, err := uikit.NewGraphicsByName("gpu", 8, 8)
	if err != nil {
		t.Fatalf("NewGraphicsByName after SetDeviceProvider: %v", err)
	}
	defer g.Close()

	if _, ok := g.Handler().(*Handler); !ok {
		t.Errorf("handler type = %T, want *gpu.Handler", g.Handler())
	}
}

func TestFirstFlushProducesPendingTexture(t *testing.T) {
	h := newTestHandler(t)
	defer h.Close()

	if h.Texture() != nil {
		t.Fatal("texture exists before first Flush")
	}
	if !h.IsDirty() {
		t.Fatal("new handler not dirty")
	}

	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	pending, ok := h.Texture().(*PendingTexture)
	if !ok {
		t.Fatalf("texture = %T, want *PendingTexture", h.Texture())
	}
	if pending.Width() != 8 || pending.Height() != 8 {
		t.Errorf("pending size = %dx%d, want 8x8", pending.Width(), pending.Height())
	}
	if len(pending.Data()) != 8*8*4 {
		t.Errorf("pending data length = %d, want %d", len(pending.Data()), 8*8*4)
	}
	if h.IsDirty() {
		t.Error("handler still dirty after Flush")
	}
}

func TestDrawingMarksDirty(t *testing.T) {
	h := newTestHandler(t)
	defer h.Close()

	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if h.IsDirty() {
		t.Fatal("dirty after Flush")
	}

	h.FillRectangle(drawing.Red, drawing.NewRectangleF(0, 0, 4, 4))
	if !h.IsDirty() {
		t.Error("FillRectangle did not mark handler dirty")
	}
}

// updatableTexture records UpdateData calls and implements Destroy.
type updatableTexture struct {
	updates   int
	destroyed bool
	lastData  []byte
}

func (u *updatableTexture) UpdateData(data []byte) error {
	u.updates++
	u.lastData = data
	return nil
}

func (u *updatableTexture) Destroy() { u.destroyed = true }

func TestFlushUpdatesAdoptedTexture(t *testing.T) {
	h := newTestHandler(t)
	defer h.Close()

	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	tex := &updatableTexture{}
	h.AdoptTexture(tex)

	h.Clear(drawing.Blue)
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if tex.updates != 1 {
		t.Errorf("updates = %d, want 1", tex.updates)
	}

	// Clean frame: no upload.
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if tex.updates != 1 {
		t.Errorf("updates after clean Flush = %d, want 1", tex.updates)
	}
}

func TestResizeDefersTextureDestruction(t *testing.T) {
	h := newTestHandler(t)
	defer h.Close()

	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	tex := &updatableTexture{}
	h.AdoptTexture(tex)

	if err := h.Resize(16, 16); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if tex.destroyed {
		t.Fatal("texture destroyed at Resize, want deferred")
	}
	if got := h.Size(); got != drawing.Sz(16, 16) {
		t.Errorf("Size after Resize = %v, want 16x16", got)
	}

	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	pending, ok := h.Texture().(*PendingTexture)
	if !ok {
		t.Fatalf("texture after resize = %T, want *PendingTexture", h.Texture())
	}
	if pending.Width() != 16 || pending.Height() != 16 {
		t.Errorf("pending size = %dx%d, want 16x16", pending.Width(), pending.Height())
	}

	// Second Flush after another resize destroys the deferred texture.
	if err := h.Resize(4, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !tex.destroyed {
		t.Error("deferred texture not destroyed on later Flush")
	}
}

func TestResizeSameSizeIsNoOp(t *testing.T) {
	h := newTestHandler(t)
	defer h.Close()

	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := h.Resize(8, 8); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if h.IsDirty() {
		t.Error("same-size Resize marked handler dirty")
	}
}

func TestCloseDestroysTextures(t *testing.T) {
	h := newTestHandler(t)
	if err := h.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	tex := &updatableTexture{}
	h.AdoptTexture(tex)

	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !tex.destroyed {
		t.Error("texture not destroyed on Close")
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := h.Flush(); err != drawing.ErrGraphicsClosed {
		t.Errorf("Flush after Close = %v, want ErrGraphicsClosed", err)
	}
	if h.Provider() != nil {
		t.Error("Provider after Close != nil")
	}
}

func TestDefaultTextureDescriptor(t *testing.T) {
	d := DefaultTextureDescriptor(640, 480)

	if d.Width != 640 || d.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", d.Width, d.Height)
	}
	if d.Depth != 1 || d.MipLevelCount != 1 || d.SampleCount != 1 {
		t.Errorf("depth/mips/samples = %d/%d/%d, want 1/1/1", d.Depth, d.MipLevelCount, d.SampleCount)
	}
	if d.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("format = %v, want RGBA8Unorm", d.Format)
	}
	if d.Usage&TextureUsageCopyDst == 0 || d.Usage&TextureUsageTextureBinding == 0 {
		t.Errorf("usage = %v, want CopyDst|TextureBinding", d.Usage)
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var h DeviceHandle = NullDeviceHandle{}
	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Error("NullDeviceHandle returned non-nil resources")
	}
	if h.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat = %v, want Undefined", h.SurfaceFormat())
	}
}
