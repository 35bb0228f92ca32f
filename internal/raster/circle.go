package raster

import (
	"image"
	"math"
)

// samplesPerRadius approximates 2*pi from above so that a circle of radius r
// gets at least one sample per perimeter pixel.
const samplesPerRadius = 20

// CircleTessellated plots 20*r evenly spaced points of the circle of radius r
// around centre, each rounded to the nearest pixel. A zero radius plots the
// centre only.
func CircleTessellated(c *Canvas, centre image.Point, r int, col Color) {
	if r <= 0 {
		c.Set(centre.X, centre.Y, col)
		return
	}

	rf := float64(r)
	n := samplesPerRadius * r
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		sin, cos := math.Sincos(theta)
		dx := int(math.Round(cos * rf))
		dy := int(math.Round(sin * rf))
		c.Set(centre.X+dx, centre.Y+dy, col)
	}
}

// Circle draws a ring as thickness concentric circles of radius r, r+1, ...
func Circle(c *Canvas, centre image.Point, r, thickness int, col Color) {
	for i := 0; i < thickness; i++ {
		CircleTessellated(c, centre, r+i, col)
	}
}
