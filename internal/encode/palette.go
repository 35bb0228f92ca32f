// Package encode converts canvases to images and writes them to files.
package encode

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"smphr/internal/raster"
)

// Palette maps raster colours to RGB; its order follows raster.Color.
var Palette = color.Palette{
	raster.Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	raster.Primary:    color.RGBA{R: 0, G: 0, B: 0, A: 255},
	raster.Accent:     color.RGBA{R: 255, G: 0, B: 0, A: 255},
}

// Image returns the canvas as a paletted image, enlarged scale times with
// nearest-neighbour sampling so that no colour outside Palette appears.
// A scale of 1 or less returns a view sharing the canvas pixels.
func Image(c *raster.Canvas, scale int) *image.Paletted {
	src := c.Image(Palette)
	if scale <= 1 {
		return src
	}

	dst := image.NewPaletted(image.Rect(0, 0, c.Width*scale, c.Height*scale), Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// toNRGBA expands a paletted image for encoders that want true colour.
func toNRGBA(src *image.Paletted) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
