package richtext

import "testing"

func TestDocument_Move(t *testing.T) {
	cases := []struct {
		name string
		from Pos
		move Move
		want Pos
	}{
		{"left wraps to previous line", Pos{Row: 1, Col: 0}, Move{Unit: MoveGrapheme, Dir: DirLeft}, Pos{Row: 0, Col: 5}},
		{"right wraps to next line", Pos{Row: 0, Col: 5}, Move{Unit: MoveGrapheme, Dir: DirRight}, Pos{Row: 1, Col: 0}},
		{"up clamps column", Pos{Row: 1, Col: 9}, Move{Unit: MoveGrapheme, Dir: DirUp}, Pos{Row: 0, Col: 5}},
		{"down on last line goes to end", Pos{Row: 1, Col: 2}, Move{Unit: MoveGrapheme, Dir: DirDown}, Pos{Row: 1, Col: 10}},
		{"word right", Pos{Row: 1, Col: 0}, Move{Unit: MoveWord, Dir: DirRight}, Pos{Row: 1, Col: 5}},
		{"word right stops at punctuation", Pos{Row: 1, Col: 5}, Move{Unit: MoveWord, Dir: DirRight}, Pos{Row: 1, Col: 6}},
		{"word left", Pos{Row: 1, Col: 10}, Move{Unit: MoveWord, Dir: DirLeft}, Pos{Row: 1, Col: 7}},
		{"home", Pos{Row: 1, Col: 4}, Move{Unit: MoveLine, Dir: DirHome}, Pos{Row: 1, Col: 0}},
		{"end", Pos{Row: 0, Col: 1}, Move{Unit: MoveLine, Dir: DirEnd}, Pos{Row: 0, Col: 5}},
		{"doc end", Pos{}, Move{Unit: MoveDoc, Dir: DirEnd}, Pos{Row: 1, Col: 10}},
	}
	for _, tc := range cases {
		d := New("hello\nworld, ink")
		d.SetCursor(tc.from)
		d.Move(tc.move)
		if got := d.Cursor(); got != tc.want {
			t.Fatalf("%s: cursor=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDocument_MoveExtend(t *testing.T) {
	d := New("hello")
	d.SetCursor(Pos{Row: 0, Col: 1})
	d.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	d.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})

	r, ok := d.Selection()
	if !ok || r != sel(0, 1, 0, 3) {
		t.Fatalf("selection=%v ok=%v, want %v", r, ok, sel(0, 1, 0, 3))
	}

	d.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if _, ok := d.Selection(); ok {
		t.Fatalf("plain move should clear the selection")
	}
}

func TestDocument_MoveAtEdgeKeepsVersion(t *testing.T) {
	d := New("ab")
	v := d.Version()
	d.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if d.Version() != v {
		t.Fatalf("move at start bumped version")
	}
}
