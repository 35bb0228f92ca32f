package figure

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"

	"smphr/internal/raster"
)

// armGeometry holds the canvas points of one arm and its flag panel.
type armGeometry struct {
	Shoulder image.Point
	Hand     image.Point
	Base     image.Point // flag edge end, FlagLength along the arm from the hand
	C2, C3   image.Point // far corners of the panel
}

// armAngle returns the direction of an arm code: 45 degree steps with code 2
// pointing along +x.
func armAngle(code uint8) float64 {
	return math.Pi / 4 * (float64(code) - 2)
}

// armPoints computes the arm for code (1-7) hanging from shoulder.
//
// Codes 1-4 put the flag panel on one side of the arm and codes 5-7 on the
// other; the corner assignment is mirrored accordingly.
func armPoints(code uint8, shoulder image.Point) armGeometry {
	sin, cos := math.Sincos(armAngle(code))
	dir := vec.Vec2{X: cos, Y: sin}

	arm := trunc(dir.Mul(ArmLength))
	flag := trunc(dir.Mul(FlagLength))
	normal := image.Pt(-flag.Y, flag.X)

	g := armGeometry{Shoulder: shoulder}
	g.Hand = shoulder.Sub(arm)
	g.Base = g.Hand.Add(flag)
	if code <= 4 {
		g.C2 = g.Base.Add(normal)
		g.C3 = g.Hand.Add(normal)
	} else {
		g.C2 = g.Base.Sub(normal)
		g.C3 = g.Hand.Sub(normal)
	}
	return g
}

// drawArm draws the arm with the given code from the shoulder offset.
// Code 0 draws nothing.
func (f Figure) drawArm(c *raster.Canvas, code uint8, shoulder image.Point) {
	if code == 0 {
		return
	}
	g := armPoints(code, f.Anchor.Add(shoulder))

	raster.Line(c, g.Shoulder, g.Hand, raster.Primary)

	if code <= 4 {
		raster.Line(c, g.Base, g.C3, raster.Primary)
	} else {
		raster.Line(c, g.Hand, g.C3, raster.Primary)
	}
	raster.Line(c, g.C3, g.C2, raster.Primary)
	raster.Line(c, g.C2, g.Base, raster.Primary)

	if code <= 4 {
		raster.FillTriangle(c, g.Hand, g.Base, g.C3, raster.Accent)
	} else {
		raster.FillTriangle(c, g.Hand, g.Base, g.C2, raster.Accent)
	}
}

// trunc drops the fractional part of both coordinates, towards zero.
func trunc(v vec.Vec2) image.Point {
	return image.Pt(int(v.X), int(v.Y))
}
