// Command uikitdemo renders a small forms UI through the best available
// backend and saves the frame as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/drawing"
	"github.com/gogpu/uikit/forms"

	_ "github.com/gogpu/uikit/backend/gpu"
	_ "github.com/gogpu/uikit/backend/software"
)

func main() {
	var (
		width   = flag.Int("width", 640, "frame width")
		height  = flag.Int("height", 480, "frame height")
		output  = flag.String("output", "demo.png", "output file")
		backend = flag.String("backend", "", "backend name (empty = auto)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		uikit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g, err := newGraphics(*backend, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create graphics: %v", err)
	}
	defer g.Close()

	g.Clear(drawing.RGB(0.12, 0.12, 0.15))
	buildUI(*width, *height).Paint(g)
	drawShapes(g)

	if err := g.Flush(); err != nil {
		log.Fatalf("Failed to flush: %v", err)
	}

	// Both bundled backends expose their CPU-side frame.
	frame, ok := g.Handler().(interface{ Bitmap() *drawing.Bitmap })
	if !ok {
		log.Fatalf("Backend %T has no CPU-readable frame", g.Handler())
	}
	if err := frame.Bitmap().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, backends: %v)\n", *output, *width, *height, uikit.Available())
}

func newGraphics(name string, width, height int) (*drawing.Graphics, error) {
	if name != "" {
		return uikit.NewGraphicsByName(name, width, height)
	}
	return uikit.NewGraphics(width, height)
}

func buildUI(width, height int) forms.Control {
	panel := forms.NewPanel(drawing.NewRectangle(20, 20, width-40, 140))
	panel.SetBackground(drawing.RGB(0.2, 0.2, 0.25))
	panel.SetPadding(forms.PaddingAll(12))

	layout := forms.NewPixelLayout(panel.ContentRect())

	title := forms.NewLabel("uikit demo")
	title.SetTextColor(drawing.White)
	title.SetBounds(drawing.NewRectangle(0, 0, 200, 18))
	layout.Add(title, drawing.Pt(0, 0))

	subtitle := forms.NewLabel("rectangles, ellipses, polygons, text")
	subtitle.SetTextColor(drawing.RGB(0.7, 0.7, 0.75))
	subtitle.SetBounds(drawing.NewRectangle(0, 0, 320, 18))
	layout.Add(subtitle, drawing.Pt(0, 24))

	badge := forms.NewLabel("software")
	badge.SetTextColor(drawing.Black)
	badge.SetBackground(drawing.RGB(0.9, 0.75, 0.2))
	badge.SetBounds(drawing.NewRectangle(0, 0, 70, 18))
	layout.Add(badge, drawing.Pt(0, 56))

	panel.SetContent(layout)
	return panel
}

func drawShapes(g *drawing.Graphics) {
	// Overlapping translucent circles.
	g.FillEllipse(drawing.RGBA(1, 0.3, 0.3, 0.8), drawing.NewRectangle(60, 200, 120, 120))
	g.FillEllipse(drawing.RGBA(0.3, 1, 0.3, 0.8), drawing.NewRectangle(120, 200, 120, 120))
	g.FillEllipse(drawing.RGBA(0.3, 0.3, 1, 0.8), drawing.NewRectangle(90, 250, 120, 120))

	// Negative Width and Height are legal; the logical edge accessors
	// normalize them before the backend sees the rectangle.
	g.DrawRectangle(drawing.White, drawing.NewRectangle(320, 220, 120, 80))
	g.FillRectangle(drawing.RGBA(1, 0.8, 0, 0.4), drawing.NewRectangle(440, 300, -120, -80))

	// Star polygon.
	g.FillPolygon(drawing.RGB(0.9, 0.5, 0.9), []drawing.PointF{
		drawing.PtF(520, 220),
		drawing.PtF(545, 290),
		drawing.PtF(610, 290),
		drawing.PtF(557, 330),
		drawing.PtF(580, 400),
		drawing.PtF(520, 355),
		drawing.PtF(460, 400),
		drawing.PtF(483, 330),
		drawing.PtF(430, 290),
		drawing.PtF(495, 290),
	})

	g.DrawLine(drawing.Gray, drawing.PtF(20, 440), drawing.PtF(620, 440))
}
