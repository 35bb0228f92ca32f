package raster

import "image"

// Triangle draws the outline of triangle a-b-d.
func Triangle(c *Canvas, a, b, d image.Point, col Color) {
	Line(c, a, b, col)
	Line(c, a, d, col)
	Line(c, b, d, col)
}

// FillTriangle draws the outline of a-b-d and flood fills it from the
// centroid. It returns the number of pixels set by the flood fill.
//
// The fill is skipped entirely when the centroid pixel already holds col.
// Small triangles whose centroid lands on their own outline, or on a pixel
// painted by a neighbouring shape, therefore stay hollow.
func FillTriangle(c *Canvas, a, b, d image.Point, col Color) int {
	a = clampPoint(c, a)
	b = clampPoint(c, b)
	d = clampPoint(c, d)

	Triangle(c, a, b, d, col)

	seed := image.Pt((a.X+b.X+d.X)/3, (a.Y+b.Y+d.Y)/3)
	return Fill(c, seed, col)
}

// Fill performs a 4-connected flood fill from seed, replacing every pixel
// reachable without crossing a pixel already holding col. It uses an
// explicit stack and returns the number of pixels changed.
func Fill(c *Canvas, seed image.Point, col Color) int {
	x, y := c.Clamp(seed.X, seed.Y)
	v := uint8(col)
	w := c.Width

	start := y*w + x
	if c.Pix[start] == v {
		return 0
	}
	c.Pix[start] = v
	filled := 1

	stack := make([]int, 0, 256)
	stack = append(stack, start)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		px, py := idx%w, idx/w

		for _, n := range [4][2]int{{px + 1, py}, {px - 1, py}, {px, py + 1}, {px, py - 1}} {
			nx, ny := c.Clamp(n[0], n[1])
			ni := ny*w + nx
			if c.Pix[ni] == v {
				continue
			}
			c.Pix[ni] = v
			filled++
			stack = append(stack, ni)
		}
	}
	return filled
}

func clampPoint(c *Canvas, p image.Point) image.Point {
	x, y := c.Clamp(p.X, p.Y)
	return image.Pt(x, y)
}
