package software

import (
	"math"
	"sort"

	"github.com/gogpu/uikit/drawing"
)

// rasterPixel blends a single device pixel, honoring the clip region.
func (h *Handler) rasterPixel(c drawing.Color, x, y int) {
	if c.A <= 0 {
		return
	}
	if !h.clip.Contains(x, y) {
		return
	}
	h.blend(c, x, y)
}

// blend composites c over the existing pixel (source-over). The caller
// has already clip-checked the coordinates.
func (h *Handler) blend(c drawing.Color, x, y int) {
	if c.A >= 1 {
		h.bitmap.SetPixel(x, y, c)
		return
	}
	dst := h.bitmap.GetPixel(x, y)
	inv := 1 - c.A
	outA := c.A + dst.A*inv
	if outA <= 0 {
		h.bitmap.SetPixel(x, y, drawing.Transparent)
		return
	}
	h.bitmap.SetPixel(x, y, drawing.Color{
		R: (c.R*c.A + dst.R*dst.A*inv) / outA,
		G: (c.G*c.A + dst.G*dst.A*inv) / outA,
		B: (c.B*c.A + dst.B*dst.A*inv) / outA,
		A: outA,
	})
}

// rasterSpan blends a horizontal run of pixels from x0 to x1 inclusive,
// clamping to the clip region.
func (h *Handler) rasterSpan(c drawing.Color, x0, x1, y int) {
	if h.clip.IsEmpty() {
		return
	}
	if y < h.clip.Top() || y > h.clip.InnerBottom() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < h.clip.Left() {
		x0 = h.clip.Left()
	}
	if x1 > h.clip.InnerRight() {
		x1 = h.clip.InnerRight()
	}
	h.rasterSpanUnclipped(c, x0, x1, y)
}

// rasterSpanUnclipped blends a span the caller has already clipped.
func (h *Handler) rasterSpanUnclipped(c drawing.Color, x0, x1, y int) {
	if c.A <= 0 {
		return
	}
	for x := x0; x <= x1; x++ {
		h.blend(c, x, y)
	}
}

// rasterLine draws a one-pixel line with Bresenham's algorithm.
func (h *Handler) rasterLine(c drawing.Color, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		h.rasterPixel(c, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rasterEllipse draws or fills the ellipse inscribed in r using the
// midpoint algorithm on float radii, scanning rows.
func (h *Handler) rasterEllipse(c drawing.Color, r drawing.Rectangle, fill bool) {
	if r.IsEmpty() {
		return
	}
	cx := float64(r.Left()) + float64(r.Width)/2
	cy := float64(r.Top()) + float64(r.Height)/2
	rx := float64(r.Width) / 2
	ry := float64(r.Height) / 2
	if rx <= 0 || ry <= 0 {
		return
	}

	top := r.Top()
	bottom := r.InnerBottom()
	prevL, prevR := -1, -1

	for y := top; y <= bottom; y++ {
		// Horizontal extent of the ellipse at this row's center.
		t := (float64(y) + 0.5 - cy) / ry
		d := 1 - t*t
		if d < 0 {
			d = 0
		}
		half := rx * math.Sqrt(d)
		xl := int(math.Round(cx - half))
		xr := int(math.Round(cx+half)) - 1
		if xr < xl {
			xr = xl
		}

		if fill {
			h.rasterSpan(c, xl, xr, y)
		} else {
			if y == top || y == bottom {
				h.rasterSpan(c, xl, xr, y)
			} else {
				// Connect to the previous row so steep sides stay solid.
				h.rasterSpan(c, xl, min(prevL-1, xl), y)
				h.rasterSpan(c, max(prevR+1, xr), xr, y)
				h.rasterPixel(c, xl, y)
				h.rasterPixel(c, xr, y)
			}
		}
		prevL, prevR = xl, xr
	}
}

// rasterPolygon fills a polygon in device coordinates with even-odd
// scanline crossing.
func (h *Handler) rasterPolygon(c drawing.Color, pts []drawing.PointF) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	y0 := max(int(math.Floor(minY)), h.clip.Top())
	y1 := min(int(math.Ceil(maxY)), h.clip.InnerBottom())

	var xs []float64
	for y := y0; y <= y1; y++ {
		sample := float64(y) + 0.5
		xs = xs[:0]

		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			// Half-open edge interval avoids double-counting vertices.
			if (sample >= a.Y && sample < b.Y) || (sample >= b.Y && sample < a.Y) {
				t := (sample - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			xl := int(math.Ceil(xs[i] - 0.5))
			xr := int(math.Floor(xs[i+1]-0.5)) + 1
			if xr > xl {
				h.rasterSpan(c, xl, xr-1, y)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
