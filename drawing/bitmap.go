package drawing

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// Bitmap represents a rectangular RGBA pixel buffer. It is the render
// target of the software backend and the source for DrawImage.
type Bitmap struct {
	width  int
	height int
	pix    []uint8 // RGBA format, 4 bytes per pixel
}

// NewBitmap creates a new bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.height
}

// Size returns the bitmap dimensions.
func (b *Bitmap) Size() Size {
	return Size{Width: b.width, Height: b.height}
}

// Pix returns the raw pixel data (RGBA format).
func (b *Bitmap) Pix() []uint8 {
	return b.pix
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are ignored.
func (b *Bitmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i+0] = uint8(clamp255(c.R * 255))
	b.pix[i+1] = uint8(clamp255(c.G * 255))
	b.pix[i+2] = uint8(clamp255(c.B * 255))
	b.pix[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel. Out-of-bounds coordinates
// return Transparent.
func (b *Bitmap) GetPixel(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := (y*b.width + x) * 4
	return Color{
		R: float64(b.pix[i+0]) / 255,
		G: float64(b.pix[i+1]) / 255,
		B: float64(b.pix[i+2]) / 255,
		A: float64(b.pix[i+3]) / 255,
	}
}

// Clear fills the entire bitmap with a color.
func (b *Bitmap) Clear(c Color) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	bl := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = r
		b.pix[i+1] = g
		b.pix[i+2] = bl
		b.pix[i+3] = a
	}
}

// RGBA returns an image.RGBA view sharing the bitmap's pixel storage.
// Drawing into the returned image mutates the bitmap.
func (b *Bitmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.pix,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// ToImage converts the bitmap to a standalone image.RGBA copy.
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// FromImage creates a bitmap from an image.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	bm := NewBitmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			bm.SetPixel(x, y, FromStd(c))
		}
	}

	return bm
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.GetPixel(x, y).Std()
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// EncodePNG writes the bitmap to w in PNG format.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	return b.save(path, b.EncodePNG)
}

// EncodeBMP writes the bitmap to w in BMP format.
func (b *Bitmap) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, b.ToImage())
}

// SaveBMP saves the bitmap to a BMP file.
func (b *Bitmap) SaveBMP(path string) error {
	return b.save(path, b.EncodeBMP)
}

func (b *Bitmap) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return encode(f)
}

// DecodePNG reads a PNG image from r into a new bitmap.
func DecodePNG(r io.Reader) (*Bitmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("drawing: decode png: %w", err)
	}
	return FromImage(img), nil
}

// DecodeBMP reads a BMP image from r into a new bitmap.
func DecodeBMP(r io.Reader) (*Bitmap, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("drawing: decode bmp: %w", err)
	}
	return FromImage(img), nil
}

// LoadPNG loads a bitmap from a PNG file.
func LoadPNG(path string) (*Bitmap, error) {
	return load(path, DecodePNG)
}

// LoadBMP loads a bitmap from a BMP file.
func LoadBMP(path string) (*Bitmap, error) {
	return load(path, DecodeBMP)
}

func load(path string, decode func(io.Reader) (*Bitmap, error)) (*Bitmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return decode(f)
}
