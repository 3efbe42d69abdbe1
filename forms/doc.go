// Package forms provides a minimal retained control tree painted through
// drawing.Graphics: an embeddable Widget base, a Panel with padding, a
// pixel-positioned layout container, and a Label.
//
// Controls hold integer bounds in their parent's coordinate space and
// are painted top-down; containers clip each child to its bounds before
// delegating, so a child cannot paint outside the region its parent gave
// it.
package forms
