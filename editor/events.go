package editor

import (
	"github.com/iw2rmb/inkwell/table"
)

// Focus names the region that receives keys and toolbar commands.
type Focus uint8

const (
	FocusText Focus = iota
	FocusTable
)

func (f Focus) String() string {
	if f == FocusTable {
		return "table"
	}
	return "text"
}

// ChangeEvent is reported after every effective mutation of the document,
// the table, the focus or the selected cell.
type ChangeEvent struct {
	// Version increases by one per event.
	Version uint64

	DocVersion   uint64
	TableVersion uint64

	Focus    Focus
	Selected table.Pos
	HasTable bool

	// Markup is the full HTML export after the change.
	Markup string
}

// TableCreatedMsg asks the editor to (re)create its table. The creation
// dialog emits it after submission; hosts may send it too.
type TableCreatedMsg struct {
	Rows int
	Cols int
}

// exportDoneMsg reports the outcome of an export write.
type exportDoneMsg struct {
	path  string
	bytes int
	err   error
}

// changeKey identifies observable state. Events fire when it changes.
type changeKey struct {
	docVersion   uint64
	tableVersion uint64
	tableShape   uint64
	hasTable     bool
	focus        Focus
	selected     table.Pos
}
