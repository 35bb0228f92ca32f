// Package render turns text into a canvas of semaphore figures.
package render

import (
	"errors"
	"fmt"
	"image"
	"time"

	"smphr/internal/debug"
	"smphr/internal/figure"
	"smphr/internal/layout"
	"smphr/internal/raster"
)

var (
	// ErrNoData is returned for empty input text.
	ErrNoData = errors.New("no input provided")

	// ErrInvalidData is returned when no character of the input has a figure.
	ErrInvalidData = errors.New("no valid character in input")

	// ErrBadSize is returned for a canvas without pixels.
	ErrBadSize = errors.New("canvas width and height must be positive")
)

// Diagnostic is a non-fatal problem met while rendering one character.
// Err matches figure.ErrInvalidCharacter, figure.ErrUnknownFigure or
// layout.ErrVerticalOverflow.
type Diagnostic struct {
	Index int // rune index in the input
	Char  rune
	Err   error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %v", d.Index, d.Err)
}

// Reporter receives diagnostics in input order.
type Reporter func(Diagnostic)

// Option configures a render pass.
type Option func(*options)

type options struct {
	reporter Reporter
	trace    *debug.Session
}

// WithReporter delivers every diagnostic to r.
func WithReporter(r Reporter) Option {
	return func(opts *options) {
		opts.reporter = r
	}
}

// WithTrace emits trace events to s. A nil session disables tracing.
func WithTrace(s *debug.Session) Option {
	return func(opts *options) {
		opts.trace = s
	}
}

// Result is the outcome of a render pass.
type Result struct {
	Canvas *raster.Canvas

	// Placed counts figures that took a cell, blanks included.
	Placed int

	// Skipped lists the characters that have no figure.
	Skipped []rune

	// Truncated is set when the canvas ran out of rows; Offset is then the
	// rune index of the first character left out.
	Truncated bool
	Offset    int
}

// Render draws one figure per character of text on a width x height canvas.
//
// Characters without a figure are reported and skipped without using a cell.
// When the figures no longer fit, rendering stops and the partial canvas is
// returned with Truncated set; this is not an error.
func Render(text string, width, height int, opts ...Option) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: %dx%d: %w", width, height, ErrBadSize)
	}
	if text == "" {
		return nil, ErrNoData
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := &pass{
		opts:  o,
		grid:  figure.Grid(width, height),
		res:   &Result{Canvas: raster.NewCanvas(width, height)},
		runes: []rune(text),
		start: time.Now(),
	}
	p.opts.trace.Emit("render", "Start", debug.RenderStartData{
		Text:       text,
		TextLength: len(p.runes),
		Width:      width,
		Height:     height,
		CellWidth:  p.grid.CellWidth,
		CellHeight: p.grid.CellHeight,
		Cols:       p.grid.Cols(),
		Rows:       p.grid.Rows(),
	})

	i, prev, ok := p.first()
	if !ok {
		p.end()
		return nil, ErrInvalidData
	}
	p.rest(i, prev)
	p.end()
	return p.res, nil
}

// pass carries the state of one render call.
type pass struct {
	opts  options
	grid  layout.Grid
	res   *Result
	runes []rune
	start time.Time
}

// first draws the first character that has a pose and returns the index of
// the rune after it with its anchor. Leading blanks are dropped.
func (p *pass) first() (int, image.Point, bool) {
	for i, r := range p.runes {
		f, err := figure.First(r)
		if err != nil {
			p.skip(i, r, err)
			continue
		}
		if f.Kind != figure.Character {
			p.opts.trace.Emit("figure", "Skip", debug.SkipData{Index: i, Rune: r, Reason: "leading " + f.Kind.String()})
			continue
		}
		p.place(i, f)
		return i + 1, f.Anchor, true
	}
	return 0, image.Point{}, false
}

// rest folds the remaining runes, chaining each anchor from the previous one.
func (p *pass) rest(from int, prev image.Point) {
	for i := from; i < len(p.runes); i++ {
		r := p.runes[i]
		f, err := figure.Next(r, prev, p.grid)
		switch {
		case errors.Is(err, layout.ErrVerticalOverflow):
			p.res.Truncated = true
			p.res.Offset = i
			p.opts.trace.Emit("layout", "Overflow", debug.OverflowData{Index: i, LastX: prev.X, LastY: prev.Y})
			p.report(i, r, err)
			return
		case err != nil:
			p.skip(i, r, err)
			continue
		}
		p.place(i, f)
		prev = f.Anchor
	}
}

func (p *pass) place(i int, f figure.Figure) {
	p.res.Placed++
	p.opts.trace.Emit("figure", "Place", debug.PlaceData{
		Index: i,
		Rune:  f.Char,
		Kind:  f.Kind.String(),
		X:     f.Anchor.X,
		Y:     f.Anchor.Y,
		Right: f.Right,
		Left:  f.Left,
	})
	if err := f.Draw(p.res.Canvas); err != nil {
		p.report(i, f.Char, err)
	}
}

func (p *pass) skip(i int, r rune, err error) {
	p.res.Skipped = append(p.res.Skipped, r)
	p.opts.trace.Emit("figure", "Skip", debug.SkipData{Index: i, Rune: r, Reason: err.Error()})
	p.report(i, r, err)
}

func (p *pass) report(i int, r rune, err error) {
	if p.opts.reporter != nil {
		p.opts.reporter(Diagnostic{Index: i, Char: r, Err: err})
	}
}

func (p *pass) end() {
	p.opts.trace.Emit("render", "End", debug.RenderEndData{
		Placed:    p.res.Placed,
		Skipped:   len(p.res.Skipped),
		Truncated: p.res.Truncated,
		Offset:    p.res.Offset,
		ElapsedMs: time.Since(p.start).Milliseconds(),
	})
}
