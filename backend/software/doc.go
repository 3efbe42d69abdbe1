// Package software provides a pure-Go CPU rasterizing backend. It renders
// into a drawing.Bitmap and registers itself as the "software" platform
// with priority 10, so it is the fallback when no GPU backend is usable.
//
// Importing the package for side effects is enough to make it selectable:
//
//	import _ "github.com/gogpu/uikit/backend/software"
package software
