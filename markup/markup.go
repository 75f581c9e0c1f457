package markup

import (
	"html"
	"strings"

	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/style"
	"github.com/iw2rmb/inkwell/table"
)

// Attr is one HTML attribute on the exported table element.
type Attr struct {
	Name  string
	Value string
}

// Options control export.
type Options struct {
	// TableAttrs replace DefaultTableAttrs when non-nil.
	TableAttrs []Attr
	// CellStyle is merged beneath every cell's own styles.
	CellStyle style.Map
}

// DefaultTableAttrs are the attributes written when Options.TableAttrs is
// nil.
func DefaultTableAttrs() []Attr {
	return []Attr{
		{Name: "border", Value: "1"},
		{Name: "style", Value: "border-collapse: collapse;"},
	}
}

func (o Options) tableAttrs() []Attr {
	if o.TableAttrs != nil {
		return o.TableAttrs
	}
	return DefaultTableAttrs()
}

// Table renders t as an HTML table, one <tr> per row and one <td> per cell.
func Table(t *table.Table, opt Options) string {
	var sb strings.Builder
	writeTable(&sb, t, opt, "")
	return sb.String()
}

func writeTable(sb *strings.Builder, t *table.Table, opt Options, indent string) {
	sb.WriteString(indent)
	sb.WriteString("<table")
	for _, a := range opt.tableAttrs() {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Value))
		sb.WriteByte('"')
	}
	sb.WriteString(">\n")

	for _, row := range t.Snapshot() {
		sb.WriteString(indent)
		sb.WriteString("  <tr>\n")
		for _, cell := range row {
			styles := opt.CellStyle.Clone()
			styles.Merge(cell.Styles)

			sb.WriteString(indent)
			sb.WriteString("    <td")
			writeStyleAttr(sb, styles)
			sb.WriteByte('>')
			sb.WriteString(html.EscapeString(cell.Content))
			sb.WriteString("</td>\n")
		}
		sb.WriteString(indent)
		sb.WriteString("  </tr>\n")
	}

	sb.WriteString(indent)
	sb.WriteString("</table>\n")
}

func writeStyleAttr(sb *strings.Builder, styles style.Map) {
	if styles.Len() == 0 {
		return
	}
	sb.WriteString(` style="`)
	sb.WriteString(html.EscapeString(styles.String()))
	sb.WriteByte('"')
}

// Document renders the whole editor content: a <div> holding one <p> per
// line with styled runs as <span> elements, followed by the table when t is
// non-nil.
func Document(d *richtext.Document, t *table.Table, opt Options) string {
	var sb strings.Builder
	sb.WriteString("<div>\n")
	for row := 0; row < d.LineCount(); row++ {
		sb.WriteString("  <p>")
		runs := d.StyledRuns(row)
		if len(runs) == 0 {
			sb.WriteString("<br>")
		}
		for _, run := range runs {
			text := html.EscapeString(run.Text)
			if run.Styles.Len() == 0 {
				sb.WriteString(text)
				continue
			}
			sb.WriteString("<span")
			writeStyleAttr(&sb, run.Styles)
			sb.WriteByte('>')
			sb.WriteString(text)
			sb.WriteString("</span>")
		}
		sb.WriteString("</p>\n")
	}
	if t != nil {
		writeTable(&sb, t, opt, "  ")
	}
	sb.WriteString("</div>\n")
	return sb.String()
}
