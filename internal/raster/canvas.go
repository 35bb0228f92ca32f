package raster

import (
	"image"
	"image/color"
)

// Color is a palette index stored per pixel.
type Color uint8

// The only three colours a canvas can hold.
const (
	Background Color = iota
	Primary
	Accent
)

// Canvas holds the indexed rendering target as a flat row-major slice.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint8 // palette index per pixel, len = W*H
}

// NewCanvas allocates a canvas filled with Background.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h),
	}
}

// Clamp bounds (x, y) to the nearest pixel inside the canvas.
func (c *Canvas) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= c.Width {
		x = c.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= c.Height {
		y = c.Height - 1
	}
	return x, y
}

// Set writes col at (x, y) after clamping.
func (c *Canvas) Set(x, y int, col Color) {
	x, y = c.Clamp(x, y)
	c.Pix[y*c.Width+x] = uint8(col)
}

// At returns the colour at (x, y) after clamping.
func (c *Canvas) At(x, y int) Color {
	x, y = c.Clamp(x, y)
	return Color(c.Pix[y*c.Width+x])
}

// Count returns the number of pixels holding col.
func (c *Canvas) Count(col Color) int {
	n := 0
	for _, v := range c.Pix {
		if Color(v) == col {
			n++
		}
	}
	return n
}

// Image wraps the canvas pixels in a paletted image without copying.
// The palette must have an entry for every Color used.
func (c *Canvas) Image(p color.Palette) *image.Paletted {
	return &image.Paletted{
		Pix:     c.Pix,
		Stride:  c.Width,
		Rect:    image.Rect(0, 0, c.Width, c.Height),
		Palette: p,
	}
}
