// Package uikit is a cross-platform GUI abstraction layer for Go.
//
// # Overview
//
// uikit provides a shared widget and drawing API with separate backend
// implementations. Application code draws through the platform-neutral
// types in the drawing and forms packages; the actual rendering is
// performed by a handler chosen from the backend registry.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/uikit"
//	    "github.com/gogpu/uikit/drawing"
//
//	    _ "github.com/gogpu/uikit/backend/software"
//	)
//
//	g, err := uikit.NewGraphics(640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	g.Clear(drawing.White)
//	g.FillRectangle(drawing.Blue, drawing.NewRectangle(10, 10, 100, 50))
//
// # Architecture
//
// The library is organized into:
//   - Root package: handler registry, logging configuration
//   - drawing: geometry (Point, Size, Rectangle), Color, Bitmap, Graphics
//   - forms: Control tree, Panel, PixelLayout, Label
//   - backend/software: pure-Go CPU handler rendering into a Bitmap
//   - backend/gpu: handler uploading rendered frames to a host GPU device
//   - text: shaping and measurement used by MeasureString
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Rectangle follows the convention that Right and Bottom are exclusive
// bounds while InnerRight and InnerBottom are inclusive; negative Width
// and Height are permitted and handled by the logical edge accessors.
package uikit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
