// Package figure builds and draws one semaphore figure per input character.
package figure

import (
	"errors"
	"fmt"
	"image"

	"smphr/internal/layout"
	"smphr/internal/pose"
	"smphr/internal/raster"
)

// Kind classifies what a figure stands for.
type Kind uint8

const (
	Unknown Kind = iota
	Character
	Space
	Newline
)

func (k Kind) String() string {
	switch k {
	case Character:
		return "character"
	case Space:
		return "space"
	case Newline:
		return "newline"
	}
	return "unknown"
}

var (
	// ErrInvalidCharacter is matched by every *InvalidCharacterError.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrUnknownFigure is returned by Draw for figures of Kind Unknown.
	// Nothing is drawn; callers treat it as a diagnostic.
	ErrUnknownFigure = errors.New("unknown figure")
)

// InvalidCharacterError reports a character that has no figure.
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Char)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// Figure is one rendered unit: a pose, a blank, or a line break marker.
type Figure struct {
	Char   rune
	Kind   Kind
	Right  uint8 // right arm code, 0-7
	Left   uint8 // left arm code, 0-7
	Anchor image.Point
}

// Grid returns the layout grid for a canvas of w x h pixels.
func Grid(w, h int) layout.Grid {
	return layout.Grid{
		CellWidth:  CellWidth,
		CellHeight: CellHeight,
		Width:      w,
		Height:     h,
	}
}

// First builds the figure for r placed in the first cell of the canvas.
// Only ASCII letters and digits, space and newline are accepted.
func First(r rune) (Figure, error) {
	f := Figure{Char: r}
	switch {
	case r == ' ':
		f.Kind = Space
		return f, nil
	case r == '\n':
		f.Kind = Newline
		return f, nil
	case !isASCIIAlnum(r):
		return Figure{}, &InvalidCharacterError{Char: r}
	}

	arms := pose.Lookup(r)
	f.Kind = Character
	f.Right = arms.Right
	f.Left = arms.Left
	f.Anchor = image.Pt(CellWidth/2, CellHeight/2)
	return f, nil
}

// Next builds the figure for r in the cell following prev.
// layout.ErrVerticalOverflow means the canvas is full.
func Next(r rune, prev image.Point, g layout.Grid) (Figure, error) {
	f, err := First(r)
	if err != nil {
		return Figure{}, err
	}
	pos, err := g.Advance(prev)
	if err != nil {
		return Figure{}, err
	}
	return f.At(pos), nil
}

// At returns a copy of f anchored at p.
func (f Figure) At(p image.Point) Figure {
	f.Anchor = p
	return f
}

// Draw renders f onto c. Spaces and newlines only take up their cell.
func (f Figure) Draw(c *raster.Canvas) error {
	switch f.Kind {
	case Space, Newline:
		return nil
	case Character:
	default:
		return ErrUnknownFigure
	}

	f.drawBody(c)
	f.drawArm(c, f.Right, RightShoulder)
	f.drawArm(c, f.Left, LeftShoulder)
	return nil
}

func (f Figure) drawBody(c *raster.Canvas) {
	at := f.Anchor.Add

	raster.ThickLine(c, at(Neck), at(Hip), BodyThickness, raster.Primary)
	raster.ThickLine(c, at(Hip), at(LeftFoot), LegThickness, raster.Primary)
	raster.ThickLine(c, at(Hip), at(RightFoot), LegThickness, raster.Primary)
	raster.Circle(c, at(Nose), HeadRadius, HeadThickness, raster.Primary)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
