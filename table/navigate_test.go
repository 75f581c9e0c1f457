package table

import "testing"

func TestNavigate_ArrowsClampWithoutWrap(t *testing.T) {
	tbl := New(3, 3)
	cases := []struct {
		at         Pos
		key        Key
		want       Pos
		wantEffect Effect
	}{
		{at: Pos{Row: 1, Col: 1}, key: KeyUp, want: Pos{Row: 0, Col: 1}, wantEffect: EffectMoved},
		{at: Pos{Row: 1, Col: 1}, key: KeyDown, want: Pos{Row: 2, Col: 1}, wantEffect: EffectMoved},
		{at: Pos{Row: 1, Col: 1}, key: KeyLeft, want: Pos{Row: 1, Col: 0}, wantEffect: EffectMoved},
		{at: Pos{Row: 1, Col: 1}, key: KeyRight, want: Pos{Row: 1, Col: 2}, wantEffect: EffectMoved},
		{at: Pos{Row: 0, Col: 0}, key: KeyUp, want: Pos{Row: 0, Col: 0}, wantEffect: EffectNone},
		{at: Pos{Row: 0, Col: 0}, key: KeyLeft, want: Pos{Row: 0, Col: 0}, wantEffect: EffectNone},
		{at: Pos{Row: 2, Col: 2}, key: KeyDown, want: Pos{Row: 2, Col: 2}, wantEffect: EffectNone},
		{at: Pos{Row: 2, Col: 2}, key: KeyRight, want: Pos{Row: 2, Col: 2}, wantEffect: EffectNone},
		{at: Pos{Row: 9, Col: -4}, key: KeyUp, want: Pos{Row: 1, Col: 0}, wantEffect: EffectMoved},
	}
	for _, tc := range cases {
		res := Navigate(tbl, tc.at, tc.key)
		if !res.Handled {
			t.Fatalf("%v at %v: arrow must be handled", tc.key, tc.at)
		}
		if res.Selected != tc.want || res.Effect != tc.wantEffect {
			t.Fatalf("%v at %v: got (%v, %d), want (%v, %d)", tc.key, tc.at, res.Selected, res.Effect, tc.want, tc.wantEffect)
		}
	}
	if tbl.Rows() != 3 || tbl.Cols() != 3 || tbl.Version() != 0 {
		t.Fatalf("arrows mutated the table")
	}
}

func TestNavigate_EnterInsertsRowBelow(t *testing.T) {
	tbl := New(2, 2)
	tbl.SetCellContent(0, 0, "a")
	tbl.SetCellContent(1, 1, "d")

	res := Navigate(tbl, Pos{Row: 0, Col: 0}, KeyEnter)
	if !res.Handled || res.Effect != EffectRowInserted {
		t.Fatalf("enter result: got %+v", res)
	}
	if res.Selected != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("enter moved selection to %v", res.Selected)
	}
	if tbl.Rows() != 3 || tbl.Cols() != 2 {
		t.Fatalf("dims after enter: got %dx%d, want 3x2", tbl.Rows(), tbl.Cols())
	}
	for c := 0; c < 2; c++ {
		if !tbl.Cell(1, c).IsBlank() {
			t.Fatalf("inserted row cell (1,%d) not blank", c)
		}
	}
	if tbl.Content(0, 0) != "a" || tbl.Content(2, 1) != "d" {
		t.Fatalf("surrounding rows changed: %v", contents(tbl))
	}
}

func TestNavigate_BackspaceOnEmptyCellDeletesRow(t *testing.T) {
	tbl := New(3, 3)
	tbl.SetCellContent(0, 0, "top")
	tbl.SetCellContent(2, 0, "bottom")

	res := Navigate(tbl, Pos{Row: 1, Col: 1}, KeyBackspace)
	if !res.Handled || res.Effect != EffectRowDeleted {
		t.Fatalf("backspace result: got %+v", res)
	}
	if tbl.Rows() != 2 {
		t.Fatalf("rows: got %d, want 2", tbl.Rows())
	}
	if got := tbl.Content(1, 0); got != "bottom" {
		t.Fatalf("former row 2 should now be row 1: got %q", got)
	}
	if got := tbl.Content(0, 0); got != "top" {
		t.Fatalf("row 0 changed: got %q", got)
	}
	if res.Selected != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("selection: got %v, want (1,1)", res.Selected)
	}
}

func TestNavigate_BackspaceOnLastRowReclampsSelection(t *testing.T) {
	tbl := New(2, 1)
	res := Navigate(tbl, Pos{Row: 1, Col: 0}, KeyBackspace)
	if res.Effect != EffectRowDeleted {
		t.Fatalf("expected row deletion, got %+v", res)
	}
	if res.Selected != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("selection after deleting the bottom row: got %v, want (0,0)", res.Selected)
	}
}

func TestNavigate_BackspaceFallsThrough(t *testing.T) {
	tbl := New(1, 2)
	res := Navigate(tbl, Pos{}, KeyBackspace)
	if res.Handled || tbl.Rows() != 1 {
		t.Fatalf("backspace on the only row must fall through: %+v rows=%d", res, tbl.Rows())
	}

	tbl = New(2, 2)
	tbl.SetCellContent(0, 0, "x")
	res = Navigate(tbl, Pos{}, KeyBackspace)
	if res.Handled || tbl.Rows() != 2 {
		t.Fatalf("backspace on a non-empty cell must fall through: %+v rows=%d", res, tbl.Rows())
	}
}

func TestNavigate_OtherKeysIgnored(t *testing.T) {
	tbl := New(2, 2)
	res := Navigate(tbl, Pos{Row: 1, Col: 1}, KeyOther)
	if res.Handled || res.Effect != EffectNone || res.Selected != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("other key: got %+v", res)
	}
}

func TestKey_String(t *testing.T) {
	if KeyBackspace.String() != "backspace" || Key(200).String() != "other" {
		t.Fatalf("unexpected key names: %q %q", KeyBackspace, Key(200))
	}
}
