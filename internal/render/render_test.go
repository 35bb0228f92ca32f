package render

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"smphr/internal/debug"
	"smphr/internal/figure"
	"smphr/internal/layout"
	"smphr/internal/raster"
)

func mustRender(t *testing.T, text string, w, h int, opts ...Option) *Result {
	t.Helper()
	res, err := Render(text, w, h, opts...)
	if err != nil {
		t.Fatalf("Render(%q, %d, %d) error: %v", text, w, h, err)
	}
	return res
}

// region returns the pixels of c inside [x0,x1)x[y0,y1).
func region(c *raster.Canvas, x0, y0, x1, y1 int) []uint8 {
	var out []uint8
	for y := y0; y < y1; y++ {
		out = append(out, c.Pix[y*c.Width+x0:y*c.Width+x1]...)
	}
	return out
}

func blank(px []uint8) bool {
	for _, v := range px {
		if v != uint8(raster.Background) {
			return false
		}
	}
	return true
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		w, h    int
		wantErr error
	}{
		{"empty text", "", 600, 400, ErrNoData},
		{"only invalid", "!!!", 600, 400, ErrInvalidData},
		{"only blanks", "  \n ", 600, 400, ErrInvalidData},
		{"zero width", "a", 0, 400, ErrBadSize},
		{"negative height", "a", 600, -1, ErrBadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Render(tt.text, tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Errorf("result = %+v, want nil", res)
			}
		})
	}
}

func TestRenderSingle(t *testing.T) {
	res := mustRender(t, "a", 600, 400)
	c := res.Canvas
	if c.Width != 600 || c.Height != 400 || len(c.Pix) != 600*400 {
		t.Fatalf("canvas %dx%d with %d pixels", c.Width, c.Height, len(c.Pix))
	}
	if res.Placed != 1 || res.Truncated || len(res.Skipped) != 0 {
		t.Errorf("result = %+v", res)
	}
	if c.Count(raster.Primary) == 0 || c.Count(raster.Accent) == 0 {
		t.Error("figure not drawn")
	}
	if !blank(region(c, figure.CellWidth, 0, c.Width, c.Height)) {
		t.Error("pixels drawn outside the first cell")
	}
}

func TestRenderSideBySide(t *testing.T) {
	w, h := 2*figure.CellWidth, figure.CellHeight
	res := mustRender(t, "ab", w, h)
	if res.Placed != 2 || res.Truncated {
		t.Fatalf("result = %+v, want 2 placed without truncation", res)
	}

	a := mustRender(t, "a", w, h).Canvas
	b := mustRender(t, "b", w, h).Canvas
	cw := figure.CellWidth

	if !slices.Equal(region(res.Canvas, 0, 0, cw, h), region(a, 0, 0, cw, h)) {
		t.Error("left cell differs from a lone 'a'")
	}
	if !slices.Equal(region(res.Canvas, cw, 0, w, h), region(b, 0, 0, cw, h)) {
		t.Error("right cell differs from a lone 'b' shifted by one cell")
	}
}

func TestRenderWraps(t *testing.T) {
	cw, ch := figure.CellWidth, figure.CellHeight
	res := mustRender(t, "abc", 2*cw, 40+2*ch)
	if res.Placed != 3 || res.Truncated {
		t.Fatalf("result = %+v, want 3 placed without truncation", res)
	}
	c := res.Canvas

	if blank(region(c, 0, ch, cw, 2*ch)) {
		t.Error("second row is empty")
	}
	if !blank(region(c, cw, ch, 2*cw, c.Height)) {
		t.Error("second row has more than one figure")
	}
}

func TestRenderTruncates(t *testing.T) {
	var diags []Diagnostic
	res := mustRender(t, "abc", 2*figure.CellWidth, figure.CellHeight, WithReporter(func(d Diagnostic) {
		diags = append(diags, d)
	}))

	if !res.Truncated || res.Offset != 2 || res.Placed != 2 {
		t.Errorf("result = %+v, want truncated at 2 after 2 figures", res)
	}
	if len(diags) != 1 || !errors.Is(diags[0].Err, layout.ErrVerticalOverflow) || diags[0].Index != 2 || diags[0].Char != 'c' {
		t.Errorf("diagnostics = %v, want one overflow at 2", diags)
	}

	full := mustRender(t, "ab", 2*figure.CellWidth, figure.CellHeight)
	if !slices.Equal(res.Canvas.Pix, full.Canvas.Pix) {
		t.Error("truncated canvas differs from the figures that fit")
	}
}

func TestRenderSkipsInvalid(t *testing.T) {
	w, h := 3*figure.CellWidth, figure.CellHeight

	var diags []Diagnostic
	got := mustRender(t, "a!b", w, h, WithReporter(func(d Diagnostic) {
		diags = append(diags, d)
	}))
	want := mustRender(t, "ab", w, h)

	if !slices.Equal(got.Canvas.Pix, want.Canvas.Pix) {
		t.Error("invalid character used a cell")
	}
	if !slices.Equal(got.Skipped, []rune{'!'}) {
		t.Errorf("Skipped = %q, want [!]", got.Skipped)
	}
	if got.Placed != 2 {
		t.Errorf("Placed = %d, want 2", got.Placed)
	}
	if len(diags) != 1 || diags[0].Index != 1 || !errors.Is(diags[0].Err, figure.ErrInvalidCharacter) {
		t.Errorf("diagnostics = %v, want one invalid character at 1", diags)
	}
}

func TestRenderLeadingSkipped(t *testing.T) {
	w, h := 2*figure.CellWidth, figure.CellHeight
	got := mustRender(t, " \n!a", w, h)
	want := mustRender(t, "a", w, h)

	if !slices.Equal(got.Canvas.Pix, want.Canvas.Pix) {
		t.Error("leading blanks moved the first figure")
	}
	if got.Placed != 1 || !slices.Equal(got.Skipped, []rune{'!'}) {
		t.Errorf("result = %+v", got)
	}
}

func TestRenderBlankCells(t *testing.T) {
	cw, h := figure.CellWidth, figure.CellHeight

	for _, text := range []string{"a b", "a\nb"} {
		res := mustRender(t, text, 3*cw, h)
		c := res.Canvas
		if res.Placed != 3 {
			t.Errorf("%q: Placed = %d, want 3", text, res.Placed)
		}
		if !blank(region(c, cw, 0, 2*cw, h)) {
			t.Errorf("%q: middle cell is not blank", text)
		}
		if blank(region(c, 2*cw, 0, 3*cw, h)) {
			t.Errorf("%q: last cell is empty", text)
		}
	}
}

func TestRenderCaseAndDigits(t *testing.T) {
	w, h := figure.CellWidth, figure.CellHeight
	a := mustRender(t, "a", w, h).Canvas

	for _, text := range []string{"A", "1", "0"} {
		got := mustRender(t, text, w, h).Canvas
		if !slices.Equal(got.Pix, a.Pix) {
			t.Errorf("%q does not render like 'a'", text)
		}
	}
}

func TestRenderSmallCanvas(t *testing.T) {
	// Smaller than one cell: the first figure is clamped, the rest overflow.
	res := mustRender(t, "ab", 20, 20)
	if res.Placed != 1 || !res.Truncated || res.Offset != 1 {
		t.Errorf("result = %+v", res)
	}
	if res.Canvas.Count(raster.Background) == len(res.Canvas.Pix) {
		t.Error("nothing drawn")
	}
}

func TestRenderTrace(t *testing.T) {
	debug.SetEnabled(true)
	defer debug.SetEnabled(false)

	var buf bytes.Buffer
	session := debug.NewSession(debug.NewJSONSink(&buf))
	mustRender(t, "a!bc", 2*figure.CellWidth, figure.CellHeight, WithTrace(session))
	if err := session.Close(); err != nil {
		t.Fatal(err)
	}

	var got []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var evt struct {
			SessionID string `json:"session_id"`
			Phase     string `json:"phase"`
			Event     string `json:"event"`
		}
		if err := json.Unmarshal(sc.Bytes(), &evt); err != nil {
			t.Fatalf("bad trace line %q: %v", sc.Text(), err)
		}
		if evt.SessionID != session.SessionID() {
			t.Errorf("session_id = %q, want %q", evt.SessionID, session.SessionID())
		}
		got = append(got, evt.Phase+"/"+evt.Event)
	}

	want := []string{
		"session/Start",
		"render/Start",
		"figure/Place",
		"figure/Skip",
		"figure/Place",
		"layout/Overflow",
		"render/End",
		"session/End",
	}
	if !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestRenderWithoutTrace(t *testing.T) {
	// A nil session is a valid no-op.
	res := mustRender(t, "a", 100, 100, WithTrace(nil))
	if res.Placed != 1 {
		t.Errorf("Placed = %d, want 1", res.Placed)
	}
}
