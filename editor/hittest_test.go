package editor

import (
	"testing"

	"github.com/iw2rmb/inkwell/table"
)

func TestGridHandles_Geometry(t *testing.T) {
	tbl := table.FromContent([][]string{{"a", "wider"}, {"", ""}})
	var g gridHandles
	g.sync(tbl, 0, 10, 0, tbl.Rows())

	cases := []struct {
		pos  table.Pos
		want rect
	}{
		{table.Pos{Row: 0, Col: 0}, rect{x: 1, y: 11, w: 5, h: 1}},
		{table.Pos{Row: 0, Col: 1}, rect{x: 7, y: 11, w: 7, h: 1}},
		{table.Pos{Row: 1, Col: 1}, rect{x: 7, y: 13, w: 7, h: 1}},
	}
	for _, tc := range cases {
		got, ok := g.cellRect(tc.pos)
		if !ok || got != tc.want {
			t.Fatalf("cellRect(%v): got %+v ok=%v, want %+v", tc.pos, got, ok, tc.want)
		}
	}

	if p, ok := g.hit(9, 13); !ok || p != (table.Pos{Row: 1, Col: 1}) {
		t.Fatalf("hit(9,13): got %v ok=%v", p, ok)
	}
	// Border columns and rule lines hold no cell.
	for _, xy := range [][2]int{{0, 11}, {6, 11}, {3, 12}, {3, 10}} {
		if p, ok := g.hit(xy[0], xy[1]); ok {
			t.Fatalf("hit(%d,%d) should miss, got %v", xy[0], xy[1], p)
		}
	}
}

func TestGridHandles_RebuildOnStructureChange(t *testing.T) {
	tbl := table.New(1, 1)
	var g gridHandles
	g.sync(tbl, 0, 0, 0, tbl.Rows())
	if _, ok := g.cellRect(table.Pos{Row: 1, Col: 0}); ok {
		t.Fatalf("unexpected handle for missing row")
	}

	tbl.InsertRow(0)
	g.sync(tbl, 0, 0, 0, tbl.Rows())
	if _, ok := g.cellRect(table.Pos{Row: 1, Col: 0}); !ok {
		t.Fatalf("handles not rebuilt after row insert")
	}

	tbl.SetCellContent(0, 0, "longer text")
	g.sync(tbl, 0, 0, 0, tbl.Rows())
	if got := g.colWidths[0]; got != len("longer text") {
		t.Fatalf("column width after content change: got %d", got)
	}

	g.sync(nil, 0, 0, 0, 0)
	if len(g.cells) != 0 {
		t.Fatalf("handles should clear without a table")
	}
}

func TestTextPosAt_WideClusters(t *testing.T) {
	m := newTestModel(Config{Text: "a世b"})
	cases := []struct {
		x, col int
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 3}, {40, 3},
	}
	for _, tc := range cases {
		if got := m.textPosAt(tc.x, 0); got.Col != tc.col {
			t.Fatalf("textPosAt(%d): got col %d, want %d", tc.x, got.Col, tc.col)
		}
	}
}

func TestGridHandles_VisibleWindow(t *testing.T) {
	tbl := table.New(5, 2)
	var g gridHandles
	g.sync(tbl, 0, 4, 2, 2)

	if _, ok := g.cellRect(table.Pos{Row: 1, Col: 0}); ok {
		t.Fatalf("row above the window should have no handle")
	}
	if _, ok := g.cellRect(table.Pos{Row: 4, Col: 0}); ok {
		t.Fatalf("row below the window should have no handle")
	}
	if got, ok := g.cellRect(table.Pos{Row: 2, Col: 1}); !ok || got.y != 5 {
		t.Fatalf("first visible row: got %+v ok=%v, want y=5", got, ok)
	}
	if p, ok := g.hit(2, 7); !ok || p != (table.Pos{Row: 3, Col: 0}) {
		t.Fatalf("hit(2,7): got %v ok=%v, want (3,0)", p, ok)
	}
}
