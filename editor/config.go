package editor

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/inkwell/markup"
	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/table"
)

// Config configures the editor Model.
type Config struct {
	// Text seeds a new document. Ignored when Document is set.
	Text     string
	Document *richtext.Document
	// Table is the initial table, if any.
	Table *table.Table

	// DefaultRows and DefaultCols prefill the creation dialog (default 2).
	DefaultRows int
	DefaultCols int
	// CreateDelay postpones table creation after the dialog is submitted.
	CreateDelay time.Duration

	// FontSizes offered by the size picker, in pixels.
	FontSizes []int

	// Markup controls the preview and the export.
	Markup markup.Options
	// ExportPath is written on the export key. Empty disables the key.
	ExportPath string

	// HidePreview drops the HTML preview pane from the layout.
	HidePreview bool

	KeyMap KeyMap
	Style  Style

	// Logger receives debug and info records. Nil discards them.
	Logger *slog.Logger

	// OnChange is called synchronously from Update.
	OnChange func(ChangeEvent)
}

var defaultFontSizes = []int{8, 10, 12, 14, 16, 18, 20}

func (c Config) withDefaults() Config {
	if c.DefaultRows < 1 {
		c.DefaultRows = 2
	}
	if c.DefaultCols < 1 {
		c.DefaultCols = 2
	}
	if c.CreateDelay < 0 {
		c.CreateDelay = 0
	}
	sizes := c.FontSizes[:0:0]
	for _, px := range c.FontSizes {
		if px > 0 {
			sizes = append(sizes, px)
		}
	}
	if len(sizes) == 0 {
		sizes = append(sizes, defaultFontSizes...)
	}
	c.FontSizes = sizes
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
