// inkwell is a terminal rich-text editor with an inline table and a live
// HTML preview.
//
// Usage:
//
//	inkwell [flags] [file.md]
//
// A Markdown file given as the only argument seeds the document; its first
// table becomes the editor's table. With --print the HTML export is written
// to stdout and the editor is not started.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/iw2rmb/inkwell"
	"github.com/iw2rmb/inkwell/config"
	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/markup"
	"github.com/iw2rmb/inkwell/mdimport"
	"github.com/iw2rmb/inkwell/richtext"
	"github.com/iw2rmb/inkwell/table"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	rows, cols int
	exportPath string
	print      bool
	logFile    string
	logLevel   string
	version    bool
	help       bool
	input      string
}

func parseFlags(args []string, stderr io.Writer) (options, *pflag.FlagSet, error) {
	var opts options
	fs := pflag.NewFlagSet("inkwell", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	fs.StringVar(&opts.configPath, "config", "", "config file (.yaml, .yml, .json, .jsonc); default $"+config.EnvVar)
	fs.IntVar(&opts.rows, "rows", 0, "start with a table of this many rows")
	fs.IntVar(&opts.cols, "cols", 0, "start with a table of this many columns")
	fs.StringVar(&opts.exportPath, "export", "", "write the HTML export here on ctrl+s and on quit")
	fs.BoolVar(&opts.print, "print", false, "print the HTML export to stdout and exit")
	fs.StringVar(&opts.logFile, "log-file", "", "write JSON log records to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.BoolVarP(&opts.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		opts.input = rest[0]
	default:
		return opts, fs, fmt.Errorf("unexpected argument: %s", rest[1])
	}
	if opts.rows < 0 || opts.cols < 0 {
		return opts, fs, errors.New("--rows and --cols must not be negative")
	}
	return opts, fs, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		printHelp(stderr, fs)
		return nil
	}
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(stderr, fs)
		return nil
	}
	if opts.version {
		fmt.Fprintln(stdout, inkwell.UserAgent())
		return nil
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	markupOpts, err := cfg.MarkupOptions()
	if err != nil {
		return err
	}
	exportPath := cfg.Export.Path
	if opts.exportPath != "" {
		exportPath = opts.exportPath
	}

	doc, tbl, err := loadInput(opts.input)
	if err != nil {
		return err
	}
	if tbl == nil && (opts.rows > 0 || opts.cols > 0) {
		rows, cols := opts.rows, opts.cols
		if rows == 0 {
			rows = cfg.Table.Rows
		}
		if cols == 0 {
			cols = cfg.Table.Cols
		}
		tbl = table.New(rows, cols)
	}

	if opts.print {
		return writeMarkup(stdout, markup.Document(doc, tbl, markupOpts))
	}

	logger, closeLog, err := newLogger(opts.logFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	model := newModel(editor.Config{
		Document:    doc,
		Table:       tbl,
		DefaultRows: cfg.Table.Rows,
		DefaultCols: cfg.Table.Cols,
		CreateDelay: cfg.Dialog.CreateDelay.Std(),
		FontSizes:   cfg.Toolbar.FontSizes,
		Markup:      markupOpts,
		ExportPath:  exportPath,
		Style: editor.StyleWithColors(editor.Colors{
			Selection:     cfg.Theme.Selection,
			Cursor:        cfg.Theme.Cursor,
			Border:        cfg.Theme.Border,
			Toolbar:       cfg.Theme.Toolbar,
			ToolbarActive: cfg.Theme.ToolbarActive,
		}),
		Logger: logger,
	})
	logger.Info("starting", "version", inkwell.Version(), "input", opts.input, "export", exportPath)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if exportPath == "" {
		return nil
	}
	html := final.(appModel).editor.Markup()
	if err := editor.WriteExport(exportPath, html); err != nil {
		return err
	}
	logger.Info("exported on quit", "path", exportPath, "bytes", len(html))
	return nil
}

// loadConfig reads path, or the file named by the environment, or the
// defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		return cfg, nil
	}
	return cfg, err
}

func loadInput(path string) (*richtext.Document, *table.Table, error) {
	if path == "" {
		return richtext.New(""), nil, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	doc, tbl, err := mdimport.Parse(src)
	if errors.Is(err, mdimport.ErrNoContent) {
		return richtext.New(""), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("import %s: %w", path, err)
	}
	return doc, tbl, nil
}

// writeMarkup prints html, highlighted when w is a terminal.
func writeMarkup(w io.Writer, html string) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return quick.Highlight(w, html, "html", "terminal256", "monokai")
	}
	_, err := io.WriteString(w, html)
	return err
}

func newLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `inkwell %s: terminal rich-text editor with tables and HTML export.

Usage:
  inkwell [flags] [file.md]

Keys:
  alt+b / alt+i / alt+u   toggle bold, italic, underline
  alt+s                   font size picker
  alt+t                   create table
  alt+m                   table menu (right-click a cell works too)
  tab                     switch between text and table
  ctrl+s                  write the HTML export
  ctrl+q                  quit

Flags:
`, inkwell.Version())
	fs.SetOutput(w)
	fs.PrintDefaults()
}
