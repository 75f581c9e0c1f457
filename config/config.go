// Package config loads inkwell configuration.
//
// Configuration comes from a single file named by:
//   - the INKWELL_CONFIG environment variable, or
//   - the --config flag
//
// There is no discovery. Without a file the defaults apply. Files ending in
// .yaml or .yml are YAML; .json and .jsonc are JSON with comments and
// trailing commas allowed.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/inkwell/markup"
	"github.com/iw2rmb/inkwell/style"
)

// EnvVar names the environment variable Load reads.
const EnvVar = "INKWELL_CONFIG"

// ErrNoConfig is returned by Load when INKWELL_CONFIG is unset. The
// returned config holds the defaults and is usable.
var ErrNoConfig = errors.New("config: " + EnvVar + " not set")

// Config is the full inkwell configuration.
type Config struct {
	Table   TableConfig   `yaml:"table" json:"table"`
	Toolbar ToolbarConfig `yaml:"toolbar" json:"toolbar"`
	Dialog  DialogConfig  `yaml:"dialog" json:"dialog"`
	Theme   ThemeConfig   `yaml:"theme" json:"theme"`
	Export  ExportConfig  `yaml:"export" json:"export"`
	Log     LogConfig     `yaml:"log" json:"log"`
}

// TableConfig configures table creation and export.
type TableConfig struct {
	// Rows and Cols prefill the creation dialog.
	Rows int `yaml:"rows" json:"rows"`
	Cols int `yaml:"cols" json:"cols"`

	// Attrs are written on the exported <table> element, sorted by name.
	// Empty means border="1" style="border-collapse: collapse;".
	Attrs map[string]string `yaml:"attrs" json:"attrs"`

	// CellStyle is inline CSS applied beneath every exported cell's styles.
	CellStyle string `yaml:"cell_style" json:"cell_style"`
}

type ToolbarConfig struct {
	FontSizes []int `yaml:"font_sizes" json:"font_sizes"`
}

type DialogConfig struct {
	// CreateDelay postpones table creation after the dialog is submitted.
	CreateDelay Duration `yaml:"create_delay" json:"create_delay"`
}

// ThemeConfig holds terminal colors: ANSI numbers or #rrggbb.
type ThemeConfig struct {
	Selection     string `yaml:"selection" json:"selection"`
	Cursor        string `yaml:"cursor" json:"cursor"`
	Border        string `yaml:"border" json:"border"`
	Toolbar       string `yaml:"toolbar" json:"toolbar"`
	ToolbarActive string `yaml:"toolbar_active" json:"toolbar_active"`
}

type ExportConfig struct {
	// Path receives the HTML export. ${HOME} and ${VAR:-default} expand.
	Path string `yaml:"path" json:"path"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// Duration is a time.Duration written as a string such as "300ms".
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) set(s string) error {
	if strings.TrimSpace(s) == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.set(s)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.set(s)
}

func (d Duration) MarshalYAML() (any, error) { return time.Duration(d).String(), nil }

// DefaultFontSizes are the sizes offered by the toolbar, in pixels.
var DefaultFontSizes = []int{8, 10, 12, 14, 16, 18, 20}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Rows: 2,
			Cols: 2,
		},
		Toolbar: ToolbarConfig{
			FontSizes: append([]int(nil), DefaultFontSizes...),
		},
		Theme: ThemeConfig{
			Selection:     "4",
			Cursor:        "7",
			Border:        "8",
			Toolbar:       "8",
			ToolbarActive: "6",
		},
		Export: ExportConfig{
			Path: "inkwell.html",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads the file named by INKWELL_CONFIG. When the variable is unset
// it returns the defaults together with ErrNoConfig.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), ErrNoConfig
	}
	return LoadFile(path)
}

// LoadFile loads path over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte, ext string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case ".json", ".jsonc":
		stripped := jsonc.ToJSON(data)
		if len(bytes.TrimSpace(stripped)) == 0 {
			break
		}
		dec := json.NewDecoder(bytes.NewReader(stripped))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml, .json or .jsonc)", ext)
	}
	cfg.Export.Path = expandVars(cfg.Export.Path)
	return cfg, nil
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error

	if c.Table.Rows < 1 {
		errs = append(errs, fmt.Errorf("table.rows must be at least 1, got %d", c.Table.Rows))
	}
	if c.Table.Cols < 1 {
		errs = append(errs, fmt.Errorf("table.cols must be at least 1, got %d", c.Table.Cols))
	}
	if _, err := style.Parse(c.Table.CellStyle); err != nil {
		errs = append(errs, fmt.Errorf("table.cell_style: %w", err))
	}
	if len(c.Toolbar.FontSizes) == 0 {
		errs = append(errs, errors.New("toolbar.font_sizes must not be empty"))
	}
	for i, px := range c.Toolbar.FontSizes {
		if px < 1 {
			errs = append(errs, fmt.Errorf("toolbar.font_sizes[%d] must be at least 1, got %d", i, px))
		}
	}
	if c.Dialog.CreateDelay < 0 {
		errs = append(errs, fmt.Errorf("dialog.create_delay must not be negative, got %s", c.Dialog.CreateDelay.Std()))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// MarkupOptions converts the table export settings.
func (c *Config) MarkupOptions() (markup.Options, error) {
	cellStyle, err := style.Parse(c.Table.CellStyle)
	if err != nil {
		return markup.Options{}, fmt.Errorf("table.cell_style: %w", err)
	}
	opt := markup.Options{CellStyle: cellStyle}
	if len(c.Table.Attrs) > 0 {
		names := make([]string, 0, len(c.Table.Attrs))
		for name := range c.Table.Attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		opt.TableAttrs = make([]markup.Attr, 0, len(names))
		for _, name := range names {
			opt.TableAttrs = append(opt.TableAttrs, markup.Attr{Name: name, Value: c.Table.Attrs[name]})
		}
	}
	return opt, nil
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}
