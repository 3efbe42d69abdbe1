package drawing

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestBitmap_SetGetPixel(t *testing.T) {
	b := NewBitmap(4, 4)

	b.SetPixel(1, 2, Red)
	if got := b.GetPixel(1, 2); !colorsClose(got, Red) {
		t.Errorf("GetPixel(1,2) = %+v, want red", got)
	}
	if got := b.GetPixel(0, 0); !colorsClose(got, Transparent) {
		t.Errorf("GetPixel(0,0) = %+v, want transparent", got)
	}

	// Out of bounds writes are ignored, reads return transparent.
	b.SetPixel(-1, 0, Red)
	b.SetPixel(4, 4, Red)
	if got := b.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %+v", got)
	}
}

func TestBitmap_Clear(t *testing.T) {
	b := NewBitmap(3, 3)
	b.Clear(Blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := b.GetPixel(x, y); !colorsClose(got, Blue) {
				t.Fatalf("pixel (%d,%d) = %+v, want blue", x, y, got)
			}
		}
	}
}

func TestBitmap_RGBASharesStorage(t *testing.T) {
	b := NewBitmap(2, 2)
	img := b.RGBA()
	img.Pix[0] = 255
	img.Pix[3] = 255
	if got := b.GetPixel(0, 0); !colorsClose(got, Red) {
		t.Errorf("RGBA view write not visible: %+v", got)
	}
}

func TestBitmap_FromImageRoundTrip(t *testing.T) {
	b := NewBitmap(2, 2)
	b.SetPixel(0, 0, Red)
	b.SetPixel(1, 1, RGBA(0, 0, 1, 0.5))

	got := FromImage(b.ToImage())
	if got.Width() != 2 || got.Height() != 2 {
		t.Fatalf("size = %dx%d", got.Width(), got.Height())
	}
	if c := got.GetPixel(0, 0); !colorsClose(c, Red) {
		t.Errorf("pixel (0,0) = %+v", c)
	}
}

func TestBitmap_PNGRoundTrip(t *testing.T) {
	b := NewBitmap(3, 2)
	b.Clear(Green)
	b.SetPixel(1, 1, Red)

	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	got, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if got.Size() != b.Size() {
		t.Fatalf("size = %v, want %v", got.Size(), b.Size())
	}
	if c := got.GetPixel(1, 1); !colorsClose(c, Red) {
		t.Errorf("pixel (1,1) = %+v", c)
	}
}

func TestBitmap_BMPRoundTrip(t *testing.T) {
	b := NewBitmap(2, 2)
	b.Clear(White)
	b.SetPixel(0, 1, Blue)

	var buf bytes.Buffer
	if err := b.EncodeBMP(&buf); err != nil {
		t.Fatalf("EncodeBMP: %v", err)
	}
	got, err := DecodeBMP(&buf)
	if err != nil {
		t.Fatalf("DecodeBMP: %v", err)
	}
	if c := got.GetPixel(0, 1); !colorsClose(c, Blue) {
		t.Errorf("pixel (0,1) = %+v", c)
	}
}

func TestBitmap_SaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	b := NewBitmap(2, 2)
	b.Clear(Magenta)
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	got, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if c := got.GetPixel(1, 0); !colorsClose(c, Magenta) {
		t.Errorf("pixel (1,0) = %+v", c)
	}
}
