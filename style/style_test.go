package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestMap_SetKeepsInsertionOrder(t *testing.T) {
	var m Map
	m.Set("font-weight", "bold")
	m.Set("font-style", "italic")
	m.Set("FONT-WEIGHT ", " 700 ")

	if got, want := m.String(), "font-weight: 700; font-style: italic;"; got != want {
		t.Fatalf("string: got %q, want %q", got, want)
	}
	if got := m.Len(); got != 2 {
		t.Fatalf("len: got %d, want %d", got, 2)
	}
}

func TestMap_MergeOverwritesWithoutRemoving(t *testing.T) {
	m := Of("color", "#ff0000", "font-weight", "bold")
	m.Merge(Of("font-weight", "normal", "font-size", "14px"))

	want := "color: #ff0000; font-weight: normal; font-size: 14px;"
	if got := m.String(); got != want {
		t.Fatalf("merged: got %q, want %q", got, want)
	}
}

func TestMap_DeleteAndHas(t *testing.T) {
	m := Of("font-weight", "bold", "font-style", "italic")
	if !m.Has("font-weight", "bold") {
		t.Fatalf("expected font-weight: bold")
	}
	if m.Has("font-weight", "normal") {
		t.Fatalf("unexpected font-weight: normal")
	}
	if !m.Delete("font-weight") {
		t.Fatalf("delete existing key should report true")
	}
	if m.Delete("font-weight") {
		t.Fatalf("delete missing key should report false")
	}
	if got, want := m.String(), "font-style: italic;"; got != want {
		t.Fatalf("after delete: got %q, want %q", got, want)
	}
}

func TestMap_CloneIsIndependent(t *testing.T) {
	a := Bold()
	b := a.Clone()
	b.Set("color", "1")
	if a.Len() != 1 {
		t.Fatalf("clone mutation leaked into original: %q", a.String())
	}
	if a.Equal(b) {
		t.Fatalf("maps with different decls must not be equal")
	}
	if !a.Equal(Bold()) {
		t.Fatalf("identical maps must be equal")
	}
}

func TestMap_CopiesDoNotAlias(t *testing.T) {
	a := Of("font-weight", "bold")
	b := a
	b.Set("font-weight", "normal")
	b.Set("color", "2")
	if got, want := a.String(), "font-weight: bold;"; got != want {
		t.Fatalf("original after copy mutation: got %q, want %q", got, want)
	}
}

func TestMap_ZeroValueString(t *testing.T) {
	var m Map
	if got := m.String(); got != "" {
		t.Fatalf("empty map string: got %q, want empty", got)
	}
	if m.Decls() != nil {
		t.Fatalf("empty map decls must be nil")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		css     string
		want    string
		wantErr bool
	}{
		{css: "", want: ""},
		{css: "padding: 8px; border: 1px solid black", want: "padding: 8px; border: 1px solid black;"},
		{css: " font-weight:bold;; ", want: "font-weight: bold;"},
		{css: "font-weight", wantErr: true},
		{css: ": bold", wantErr: true},
		{css: "color:", wantErr: true},
	}
	for _, tc := range cases {
		m, err := Parse(tc.css)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tc.css)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.css, err)
		}
		if got := m.String(); got != tc.want {
			t.Fatalf("Parse(%q): got %q, want %q", tc.css, got, tc.want)
		}
	}
}

func TestFontSize(t *testing.T) {
	if got, want := FontSize(14).String(), "font-size: 14px;"; got != want {
		t.Fatalf("font size: got %q, want %q", got, want)
	}
}

func TestTerminal_ProjectsKnownDecls(t *testing.T) {
	m := MustParse("font-weight: 700; font-style: italic; text-decoration: underline line-through; color: #00ff00; font-size: 20px")
	st := m.Terminal(lipgloss.NewStyle())

	if !st.GetBold() {
		t.Fatalf("expected bold")
	}
	if !st.GetItalic() {
		t.Fatalf("expected italic")
	}
	if !st.GetUnderline() {
		t.Fatalf("expected underline")
	}
	if !st.GetStrikethrough() {
		t.Fatalf("expected strikethrough")
	}
	if got := st.GetForeground(); got != lipgloss.Color("#00ff00") {
		t.Fatalf("foreground: got %v, want %v", got, lipgloss.Color("#00ff00"))
	}
}

func TestTerminal_IgnoresUnknownValues(t *testing.T) {
	m := Of("font-weight", "300", "color", "red", "background-color", "999")
	st := m.Terminal(lipgloss.NewStyle())
	if st.GetBold() {
		t.Fatalf("light weight must not be bold")
	}
	if _, ok := st.GetForeground().(lipgloss.NoColor); !ok {
		t.Fatalf("named color should be ignored, got %v", st.GetForeground())
	}
}
