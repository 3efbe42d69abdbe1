// Package drawing provides the platform-neutral drawing API of uikit:
// integer and floating-point geometry (Point, Size, Rectangle), colors,
// bitmaps, fonts, and the Graphics front-end that forwards drawing calls
// to a platform GraphicsHandler.
//
// The geometry types are plain value types copied by assignment. Rectangle
// permits negative Width and Height; see its documentation for how the
// logical edge accessors normalize the sign.
package drawing
