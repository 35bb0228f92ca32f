// Package layout places fixed-size cells left to right across a canvas.
package layout

import (
	"errors"
	"image"
)

// ErrVerticalOverflow is returned when the next row would not fit the canvas.
var ErrVerticalOverflow = errors.New("vertical overflow")

// Grid describes the fixed cell size and the canvas it is laid out on.
type Grid struct {
	CellWidth  int
	CellHeight int
	Width      int // canvas width
	Height     int // canvas height
}

// Origin is the anchor of the first cell.
func (g Grid) Origin() image.Point {
	return image.Pt(g.CellWidth/2, g.CellHeight/2)
}

// Advance returns the anchor following p. When the next cell would reach the
// right edge it wraps to the start of the next row; if that row does not fit
// either, ErrVerticalOverflow is returned and p is left where it was.
func (g Grid) Advance(p image.Point) (image.Point, error) {
	if p.X+g.CellWidth >= g.Width {
		next := image.Pt(g.CellWidth/2, p.Y+g.CellHeight)
		if next.Y+g.CellHeight > g.Height {
			return p, ErrVerticalOverflow
		}
		return next, nil
	}
	return image.Pt(p.X+g.CellWidth, p.Y), nil
}

// Rows returns how many rows of cells fit when the first anchor is Origin.
func (g Grid) Rows() int {
	if g.CellHeight <= 0 {
		return 0
	}
	rows := 1
	y := g.Origin().Y
	for y+2*g.CellHeight <= g.Height {
		y += g.CellHeight
		rows++
	}
	return rows
}

// Cols returns how many cells fit on one row when the row starts at Origin.
func (g Grid) Cols() int {
	if g.CellWidth <= 0 {
		return 0
	}
	cols := 1
	x := g.Origin().X
	for x+g.CellWidth < g.Width {
		x += g.CellWidth
		cols++
	}
	return cols
}
