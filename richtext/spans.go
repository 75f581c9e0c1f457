package richtext

import (
	"sort"

	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/style"
)

// Span is an inline style container over a range of text.
type Span struct {
	Range  Range
	Styles style.Map
}

// Run is a maximal slice of one line sharing the same effective styles.
type Run struct {
	StartCol int
	EndCol   int
	Text     string
	Styles   style.Map
}

// Spans returns copies of the document's spans in insertion order.
func (d *Document) Spans() []Span {
	out := make([]Span, len(d.spans))
	for i, sp := range d.spans {
		out[i] = Span{Range: sp.Range, Styles: sp.Styles.Clone()}
	}
	return out
}

// ApplyStyle wraps the active selection in a new span carrying styles.
// It reports false when nothing is selected or styles is empty.
func (d *Document) ApplyStyle(styles style.Map) bool {
	r, ok := d.Selection()
	if !ok || styles.Len() == 0 {
		return false
	}
	d.spans = append(d.spans, Span{Range: r, Styles: styles.Clone()})
	d.version++
	return true
}

// RemoveStyle clears key from the immediate container of the selection
// anchor. A span left without declarations is dropped.
func (d *Document) RemoveStyle(key string) bool {
	if _, ok := d.Selection(); !ok {
		return false
	}
	i := d.container(d.anchor())
	if i < 0 || !d.spans[i].Styles.Delete(key) {
		return false
	}
	if d.spans[i].Styles.Len() == 0 {
		d.spans = append(d.spans[:i:i], d.spans[i+1:]...)
	}
	d.version++
	return true
}

// IsStyleApplied reports whether the immediate container of the anchor
// carries key: value.
func (d *Document) IsStyleApplied(key, value string) bool {
	i := d.container(d.anchor())
	return i >= 0 && d.spans[i].Styles.Has(key, value)
}

// ToggleStyle removes key when key: value is applied at the anchor and
// applies it to the selection otherwise. It returns whether the style is
// applied afterwards.
func (d *Document) ToggleStyle(key, value string) bool {
	if d.IsStyleApplied(key, value) {
		d.RemoveStyle(key)
		return d.IsStyleApplied(key, value)
	}
	return d.ApplyStyle(style.Of(key, value))
}

// container returns the index of the innermost span containing p, or -1.
// The smallest span wins; among equal sizes the later one does.
func (d *Document) container(p Pos) int {
	best, bestSize := -1, 0
	for i, sp := range d.spans {
		if !sp.Range.Contains(p) {
			continue
		}
		size := d.offset(sp.Range.End) - d.offset(sp.Range.Start)
		if best < 0 || size <= bestSize {
			best, bestSize = i, size
		}
	}
	return best
}

// StylesAt returns the effective styles at p, merged outer to inner.
func (d *Document) StylesAt(p Pos) style.Map {
	idx := make([]int, 0, 4)
	for i, sp := range d.spans {
		if sp.Range.Contains(p) {
			idx = append(idx, i)
		}
	}
	return d.mergeSpans(idx)
}

func (d *Document) mergeSpans(idx []int) style.Map {
	sort.SliceStable(idx, func(a, b int) bool {
		sa := d.offset(d.spans[idx[a]].Range.End) - d.offset(d.spans[idx[a]].Range.Start)
		sb := d.offset(d.spans[idx[b]].Range.End) - d.offset(d.spans[idx[b]].Range.Start)
		return sa > sb
	})
	var out style.Map
	for _, i := range idx {
		out.Merge(d.spans[i].Styles)
	}
	return out
}

// StyledRuns splits row into runs of uniform effective style. An empty line
// yields no runs.
func (d *Document) StyledRuns(row int) []Run {
	if row < 0 || row >= len(d.lines) {
		return nil
	}
	line := d.lines[row]
	if len(line) == 0 {
		return nil
	}

	// Cut points are the line ends plus every span boundary on this row.
	cuts := []int{0, len(line)}
	for _, sp := range d.spans {
		for _, p := range []Pos{sp.Range.Start, sp.Range.End} {
			if p.Row == row && p.Col > 0 && p.Col < len(line) {
				cuts = append(cuts, p.Col)
			}
		}
	}
	sort.Ints(cuts)

	var runs []Run
	for i := 0; i+1 < len(cuts); i++ {
		from, to := cuts[i], cuts[i+1]
		if from == to {
			continue
		}
		styles := d.StylesAt(Pos{Row: row, Col: from})
		if n := len(runs); n > 0 && runs[n-1].Styles.Equal(styles) {
			runs[n-1].EndCol = to
			runs[n-1].Text += grapheme.Join(line[from:to])
			continue
		}
		runs = append(runs, Run{
			StartCol: from,
			EndCol:   to,
			Text:     grapheme.Join(line[from:to]),
			Styles:   styles,
		})
	}
	return runs
}
