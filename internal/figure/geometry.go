package figure

import "image"

// Body part offsets in model space, relative to the figure anchor.
var (
	RightFoot     = image.Pt(10, 40)
	LeftFoot      = image.Pt(-10, 40)
	RightShoulder = image.Pt(-5, -10)
	LeftShoulder  = image.Pt(5, -10)

	Hip  = image.Pt(0, 20)
	Neck = image.Pt(0, -10)
	Nose = image.Pt(0, -20)
)

const (
	HeadRadius = 10 // Neck.Y - Nose.Y
	ArmLength  = 30
	FlagLength = 10

	XMargin = 1
	YMargin = 1

	HeadThickness = 2
	BodyThickness = 10
	LegThickness  = 3
)

// Every figure occupies one cell of this size, whatever its pose: both arms
// fully stretched sideways (LeftShoulder.X) and one arm raised above the
// shoulders down to the feet (RightFoot.Y - RightShoulder.Y).
const (
	CellWidth  = 2*(5+ArmLength) + XMargin
	CellHeight = 40 - (-10) + ArmLength + YMargin
)
