package richtext

import "testing"

func sel(r0, c0, r1, c1 int) Range {
	return Range{Start: Pos{Row: r0, Col: c0}, End: Pos{Row: r1, Col: c1}}
}

func TestDocument_InsertText_MultiLine(t *testing.T) {
	d := New("ab")
	d.SetCursor(Pos{Row: 0, Col: 1})
	v := d.Version()

	d.InsertText("X\nY")
	if got, want := d.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := d.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestDocument_InsertText_ReplacesSelection(t *testing.T) {
	d := New("hello")
	d.SetSelection(sel(0, 1, 0, 4))

	d.InsertText("i")
	if got, want := d.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := d.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}

	ch, ok := d.LastChange()
	if !ok {
		t.Fatalf("expected a recorded change")
	}
	if ch.Edit.DeletedText != "ell" || ch.Edit.InsertText != "i" {
		t.Fatalf("edit=%+v, want ell -> i", ch.Edit)
	}
	if ch.VersionAfter != d.Version() {
		t.Fatalf("change version=%d, want %d", ch.VersionAfter, d.Version())
	}
}

func TestDocument_InsertText_Unicode(t *testing.T) {
	d := New("")
	d.InsertText("π")
	d.InsertText("テ")
	d.InsertText("é")

	if got, want := d.LineLen(0), 3; got != want {
		t.Fatalf("line len=%d, want %d", got, want)
	}
	if got, want := d.Cursor(), (Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDocument_DeleteBackward(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		cursor Pos
		want   string
		after  Pos
	}{
		{name: "mid line", text: "abc", cursor: Pos{Row: 0, Col: 2}, want: "ac", after: Pos{Row: 0, Col: 1}},
		{name: "joins lines", text: "ab\ncd", cursor: Pos{Row: 1, Col: 0}, want: "abcd", after: Pos{Row: 0, Col: 2}},
		{name: "document start", text: "ab", cursor: Pos{}, want: "ab", after: Pos{}},
	}
	for _, tc := range cases {
		d := New(tc.text)
		d.SetCursor(tc.cursor)
		d.DeleteBackward()
		if got := d.Text(); got != tc.want {
			t.Fatalf("%s: text=%q, want %q", tc.name, got, tc.want)
		}
		if got := d.Cursor(); got != tc.after {
			t.Fatalf("%s: cursor=%v, want %v", tc.name, got, tc.after)
		}
	}
}

func TestDocument_DeleteForward(t *testing.T) {
	d := New("ab\ncd")
	d.SetCursor(Pos{Row: 0, Col: 2})
	d.DeleteForward()
	if got, want := d.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	d.SetCursor(Pos{Row: 0, Col: 4})
	v := d.Version()
	d.DeleteForward()
	if d.Version() != v {
		t.Fatalf("delete at document end bumped version")
	}
}

func TestDocument_DeleteSelection_MultiLine(t *testing.T) {
	d := New("one\ntwo\nthree")
	d.SetSelection(sel(0, 2, 2, 2))
	d.DeleteSelection()
	if got, want := d.Text(), "onree"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDocument_NoopEditsKeepVersion(t *testing.T) {
	d := New("x")
	v := d.Version()
	d.DeleteSelection()
	d.InsertText("")
	if d.Version() != v {
		t.Fatalf("no-op edits bumped version to %d", d.Version())
	}
	if _, ok := d.LastChange(); ok {
		t.Fatalf("no-op edits recorded a change")
	}
}

func TestDocument_SelectAll(t *testing.T) {
	d := New("ab\nc")
	d.SelectAll()
	r, ok := d.Selection()
	if !ok || r != sel(0, 0, 1, 1) {
		t.Fatalf("selection=%v ok=%v, want %v", r, ok, sel(0, 0, 1, 1))
	}
	if got := d.TextInRange(r); got != "ab\nc" {
		t.Fatalf("selected text=%q", got)
	}
}
