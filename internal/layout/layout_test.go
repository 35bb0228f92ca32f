package layout

import (
	"errors"
	"image"
	"testing"
)

func TestAdvance(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 20, Width: 45, Height: 70}

	tests := []struct {
		name    string
		from    image.Point
		want    image.Point
		wantErr error
	}{
		{"same row", image.Pt(5, 10), image.Pt(15, 10), nil},
		{"last cell of row", image.Pt(25, 10), image.Pt(35, 10), nil},
		{"wrap", image.Pt(35, 10), image.Pt(5, 30), nil},
		{"wrap exactly at the edge", image.Pt(35, 30), image.Pt(5, 50), nil},
		{"wrap past the right edge", image.Pt(60, 10), image.Pt(5, 30), nil},
		{"overflow", image.Pt(35, 51), image.Pt(35, 51), ErrVerticalOverflow},
		{"overflow far below", image.Pt(35, 200), image.Pt(35, 200), ErrVerticalOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Advance(tt.from)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Advance(%v) error = %v, want %v", tt.from, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Advance(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestAdvanceFold(t *testing.T) {
	g := Grid{CellWidth: 71, CellHeight: 81, Width: 142, Height: 243}

	p := g.Origin()
	var got []image.Point
	for {
		next, err := g.Advance(p)
		if err != nil {
			break
		}
		got = append(got, next)
		p = next
	}

	want := []image.Point{{106, 40}, {35, 121}, {106, 121}}
	if len(got) != len(want) {
		t.Fatalf("placed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("anchor %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestColsRows(t *testing.T) {
	tests := []struct {
		name       string
		g          Grid
		cols, rows int
	}{
		{"single cell", Grid{CellWidth: 71, CellHeight: 81, Width: 71, Height: 81}, 1, 1},
		{"two by one", Grid{CellWidth: 71, CellHeight: 81, Width: 142, Height: 81}, 2, 1},
		{"default canvas", Grid{CellWidth: 71, CellHeight: 81, Width: 600, Height: 400}, 8, 4},
		{"smaller than a cell", Grid{CellWidth: 71, CellHeight: 81, Width: 20, Height: 20}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Cols(); got != tt.cols {
				t.Errorf("Cols() = %d, want %d", got, tt.cols)
			}
			if got := tt.g.Rows(); got != tt.rows {
				t.Errorf("Rows() = %d, want %d", got, tt.rows)
			}
		})
	}
}
