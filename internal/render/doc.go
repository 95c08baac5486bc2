// Package render draws the ZenFlow app icon artwork.
//
// Each Design is a pure function from an edge length in pixels to a square
// opaque image. Shape parameters are authored against a reference size and
// scaled proportionally, so one routine serves every catalog size.
package render
