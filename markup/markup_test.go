package markup

import (
	"strings"
	"testing"

	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/style"
	"github.com/iw2rmb/inkwell/table"
)

func TestTable_Format(t *testing.T) {
	tbl := table.FromContent([][]string{{"a", "b"}, {"c", ""}})
	tbl.ApplyStyle(0, 0, style.Bold())

	got := Table(tbl, Options{})
	want := `<table border="1" style="border-collapse: collapse;">
  <tr>
    <td style="font-weight: bold;">a</td>
    <td>b</td>
  </tr>
  <tr>
    <td>c</td>
    <td></td>
  </tr>
</table>
`
	if got != want {
		t.Fatalf("markup:\n%s\nwant:\n%s", got, want)
	}
}

func TestTable_Idempotent(t *testing.T) {
	tbl := table.New(3, 2)
	tbl.ApplyStyle(1, 1, style.Of(style.FontSizeKey, "14px", style.FontStyle, "italic"))
	tbl.SetCellContent(2, 0, "x")

	first := Table(tbl, Options{})
	for i := 0; i < 5; i++ {
		if got := Table(tbl, Options{}); got != first {
			t.Fatalf("render %d differs:\n%s\nfirst:\n%s", i, got, first)
		}
	}
}

func TestTable_EscapesContent(t *testing.T) {
	tbl := table.FromContent([][]string{{`<b>"x" & y</b>`}})
	got := Table(tbl, Options{})
	if !strings.Contains(got, "<td>&lt;b&gt;&#34;x&#34; &amp; y&lt;/b&gt;</td>") {
		t.Fatalf("content not escaped:\n%s", got)
	}
}

func TestTable_CellStyleMergedBeneath(t *testing.T) {
	tbl := table.New(1, 2)
	tbl.ApplyStyle(0, 1, style.Of("padding", "8px"))
	opt := Options{
		TableAttrs: []Attr{{Name: "class", Value: "grid"}},
		CellStyle:  style.Of("padding", "4px", "min-width", "60px"),
	}

	got := Table(tbl, opt)
	if !strings.HasPrefix(got, `<table class="grid">`) {
		t.Fatalf("custom attrs not used:\n%s", got)
	}
	if !strings.Contains(got, `<td style="padding: 4px; min-width: 60px;"></td>`) {
		t.Fatalf("default cell style missing:\n%s", got)
	}
	if !strings.Contains(got, `<td style="padding: 8px; min-width: 60px;"></td>`) {
		t.Fatalf("cell style should override the default:\n%s", got)
	}
}

func TestDocument_SpansAndTable(t *testing.T) {
	d := richtext.New("hi there\n")
	d.SetSelection(richtext.Range{Start: richtext.Pos{Row: 0, Col: 3}, End: richtext.Pos{Row: 0, Col: 8}})
	d.ApplyStyle(style.Bold())
	tbl := table.New(1, 1)

	got := Document(d, tbl, Options{})
	want := `<div>
  <p>hi <span style="font-weight: bold;">there</span></p>
  <p><br></p>
  <table border="1" style="border-collapse: collapse;">
    <tr>
      <td></td>
    </tr>
  </table>
</div>
`
	if got != want {
		t.Fatalf("document:\n%s\nwant:\n%s", got, want)
	}
}

func TestDocument_NoTable(t *testing.T) {
	got := Document(richtext.New("x"), nil, Options{})
	if strings.Contains(got, "<table") {
		t.Fatalf("nil table rendered:\n%s", got)
	}
}
