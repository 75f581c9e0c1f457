// Package mdimport builds an editor document and table from Markdown.
//
// Paragraphs, headings, list items and code lines become document lines.
// Strong, emphasis, strikethrough, code spans and links become styled
// spans. The first GFM table becomes the editor table, with its header row
// in bold; later tables are skipped.
package mdimport

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/style"
	"github.com/iw2rmb/inkwell/table"
)

// ErrNoContent is returned for input with neither text nor a table.
var ErrNoContent = errors.New("mdimport: no content")

var (
	parserOnce sync.Once
	parser     goldmark.Markdown
)

func markdown() goldmark.Markdown {
	parserOnce.Do(func() {
		parser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parser
}

// headingSizes maps heading levels to font sizes; deeper levels are bold
// only.
var headingSizes = map[int]int{1: 24, 2: 20, 3: 18}

// Parse converts src. The table is nil when src holds no GFM table.
func Parse(src []byte) (*richtext.Document, *table.Table, error) {
	if strings.TrimSpace(string(src)) == "" {
		return nil, nil, ErrNoContent
	}
	root := markdown().Parser().Parse(text.NewReader(src))

	b := &builder{src: src}
	if err := ast.Walk(root, b.walk); err != nil {
		return nil, nil, err
	}
	b.flush()

	if len(b.lines) == 0 && b.table == nil {
		return nil, nil, ErrNoContent
	}

	doc := richtext.New(strings.Join(b.lines, "\n"))
	for _, sp := range b.spans {
		if sp.open || sp.r.IsEmpty() {
			continue
		}
		doc.SetSelection(sp.r)
		doc.ApplyStyle(sp.styles)
	}
	doc.ClearSelection()
	doc.SetCursor(richtext.Pos{})
	return doc, b.table, nil
}

type pendingSpan struct {
	r      richtext.Range
	styles style.Map
	open   bool
}

type builder struct {
	src []byte

	lines []string
	cur   strings.Builder
	col   int
	dirty bool

	spans []pendingSpan
	stack []int

	table *table.Table
}

func (b *builder) pos() richtext.Pos {
	return richtext.Pos{Row: len(b.lines), Col: b.col}
}

func (b *builder) write(s string) {
	if s == "" {
		return
	}
	b.cur.WriteString(s)
	b.col += grapheme.Count(s)
	b.dirty = true
}

// endLine closes the current line. Spans still open continue on the next.
func (b *builder) endLine() {
	b.lines = append(b.lines, b.cur.String())
	b.cur.Reset()
	b.col = 0
	b.dirty = false
}

// flush closes the current line if anything was written to it.
func (b *builder) flush() {
	if b.dirty {
		b.endLine()
	}
}

func (b *builder) push(styles style.Map) {
	b.stack = append(b.stack, len(b.spans))
	b.spans = append(b.spans, pendingSpan{r: richtext.Range{Start: b.pos()}, styles: styles, open: true})
}

func (b *builder) pop() {
	if len(b.stack) == 0 {
		return
	}
	i := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.spans[i].r.End = b.pos()
	b.spans[i].open = false
}

func (b *builder) styled(entering bool, styles func() style.Map) {
	if entering {
		b.push(styles())
	} else {
		b.pop()
	}
}

func (b *builder) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if !entering {
			b.flush()
		}

	case ast.KindHeading:
		h := n.(*ast.Heading)
		b.styled(entering, func() style.Map {
			m := style.Bold()
			if px, ok := headingSizes[h.Level]; ok {
				m.Merge(style.FontSize(px))
			}
			return m
		})
		if !entering {
			// The span must close before the line does.
			b.flush()
		}

	case ast.KindListItem:
		if entering {
			b.flush()
			b.write(listMarker(n))
		}

	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		if entering {
			b.flush()
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.write(strings.TrimRight(string(seg.Value(b.src)), "\r\n"))
				b.endLine()
			}
		}
		return ast.WalkSkipChildren, nil

	case ast.KindThematicBreak:
		if entering {
			b.flush()
			b.endLine()
		}

	case ast.KindHTMLBlock, ast.KindRawHTML:
		return ast.WalkSkipChildren, nil

	case ast.KindText:
		if entering {
			t := n.(*ast.Text)
			b.write(string(t.Segment.Value(b.src)))
			switch {
			case t.HardLineBreak():
				b.endLine()
			case t.SoftLineBreak():
				b.write(" ")
			}
		}

	case ast.KindString:
		if entering {
			b.write(string(n.(*ast.String).Value))
		}

	case ast.KindAutoLink:
		if entering {
			b.push(style.Underline())
			b.write(string(n.(*ast.AutoLink).Label(b.src)))
			b.pop()
		}
		return ast.WalkSkipChildren, nil

	case ast.KindEmphasis:
		level := n.(*ast.Emphasis).Level
		b.styled(entering, func() style.Map {
			if level >= 2 {
				return style.Bold()
			}
			return style.Italic()
		})

	case ast.KindCodeSpan:
		b.styled(entering, func() style.Map { return style.Of("font-family", "monospace") })

	case ast.KindLink:
		b.styled(entering, style.Underline)

	case extast.KindStrikethrough:
		b.styled(entering, func() style.Map { return style.Of(style.TextDecoration, "line-through") })

	case extast.KindTable:
		if entering {
			b.flush()
			if b.table == nil {
				b.table = b.buildTable(n)
			}
		}
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func listMarker(item ast.Node) string {
	list, ok := item.Parent().(*ast.List)
	if !ok || !list.IsOrdered() {
		return "• "
	}
	n := list.Start
	for c := list.FirstChild(); c != nil && c != item; c = c.NextSibling() {
		n++
	}
	return strconv.Itoa(n) + string(list.Marker) + " "
}

func (b *builder) buildTable(n ast.Node) *table.Table {
	var content [][]string
	header := -1
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.Kind() {
		case extast.KindTableHeader:
			header = len(content)
		case extast.KindTableRow:
		default:
			continue
		}
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if cell.Kind() == extast.KindTableCell {
				cells = append(cells, b.plainText(cell))
			}
		}
		content = append(content, cells)
	}
	t := table.FromContent(content)
	if header >= 0 {
		for c := 0; c < t.Cols(); c++ {
			t.ApplyStyle(header, c, style.Bold())
		}
	}
	return t
}

// plainText collects the text of n's inline descendants.
func (b *builder) plainText(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(b.src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		case *ast.AutoLink:
			sb.Write(v.Label(b.src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
