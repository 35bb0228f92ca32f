package raster

import (
	"image"
	"math"
)

// Point plots a single pixel, clamped into the canvas.
func Point(c *Canvas, p image.Point, col Color) {
	c.Set(p.X, p.Y, col)
}

// Line draws a one pixel wide line from p0 to p1 with integer Bresenham
// stepping. Both endpoints are clamped first and both are plotted.
//
// The walk always starts at the endpoint with the smaller x (then smaller y),
// so Line(p0, p1) and Line(p1, p0) touch exactly the same pixels.
func Line(c *Canvas, p0, p1 image.Point, col Color) {
	x0, y0 := c.Clamp(p0.X, p0.Y)
	x1, y1 := c.Clamp(p1.X, p1.Y)
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	v := uint8(col)
	w := c.Width

	// Vertical and horizontal runs, including the single pixel case.
	if x0 == x1 {
		for y := y0; y <= y1; y++ {
			c.Pix[y*w+x0] = v
		}
		return
	}
	if y0 == y1 {
		for x := x0; x <= x1; x++ {
			c.Pix[y0*w+x] = v
		}
		return
	}

	dx := x1 - x0 // > 0 after the swap above
	dy := y1 - y0
	sy := 1
	if dy < 0 {
		dy = -dy
		sy = -1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		c.Pix[y*w+x] = v
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x++
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// ThickLine draws a segment of the given thickness as the rectangle around
// p0-p1, split into two triangles. Thickness above 2 is filled; thinner
// segments only get the two triangle outlines.
func ThickLine(c *Canvas, p0, p1 image.Point, thickness int, col Color) {
	u := float64(thickness / 2)
	alpha := math.Atan2(float64(p1.Y-p0.Y), float64(p1.X-p0.X))
	sina, cosa := math.Sincos(alpha)

	// Half-thickness offset along the unit normal (-sin, cos).
	ox, oy := -u*sina, u*cosa
	shift := func(p image.Point, s float64) image.Point {
		return image.Pt(
			int(math.Round(float64(p.X)+s*ox)),
			int(math.Round(float64(p.Y)+s*oy)),
		)
	}

	a := shift(p0, 1)
	b := shift(p0, -1)
	d := shift(p1, 1)
	e := shift(p1, -1)

	if thickness > 2 {
		FillTriangle(c, a, b, d, col)
		FillTriangle(c, d, e, b, col)
		return
	}
	Triangle(c, a, b, d, col)
	Triangle(c, d, e, b, col)
}
