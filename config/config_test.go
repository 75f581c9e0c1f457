package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Table.Rows != 2 || cfg.Table.Cols != 2 {
		t.Fatalf("default dims: got %dx%d, want 2x2", cfg.Table.Rows, cfg.Table.Cols)
	}
	if len(cfg.Toolbar.FontSizes) != 7 || cfg.Toolbar.FontSizes[0] != 8 || cfg.Toolbar.FontSizes[6] != 20 {
		t.Fatalf("default font sizes: got %v", cfg.Toolbar.FontSizes)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_UnsetReturnsDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load()
	if !errors.Is(err, ErrNoConfig) {
		t.Fatalf("err: got %v, want ErrNoConfig", err)
	}
	if cfg == nil || cfg.Table.Rows != 2 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "inkwell.yaml", `
table:
  rows: 4
  cols: 3
  attrs:
    class: grid
    border: "0"
  cell_style: "padding: 4px"
toolbar:
  font_sizes: [12, 24]
dialog:
  create_delay: 250ms
export:
  path: ${INKWELL_TEST_DIR:-/tmp}/out.html
log:
  level: debug
`)
	t.Setenv(EnvVar, path)
	t.Setenv("INKWELL_TEST_DIR", "/data")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Table.Rows != 4 || cfg.Table.Cols != 3 {
		t.Fatalf("dims: got %dx%d, want 4x3", cfg.Table.Rows, cfg.Table.Cols)
	}
	if cfg.Dialog.CreateDelay.Std() != 250*time.Millisecond {
		t.Fatalf("delay: got %s", cfg.Dialog.CreateDelay.Std())
	}
	if cfg.Export.Path != "/data/out.html" {
		t.Fatalf("export path: got %q", cfg.Export.Path)
	}
	if level, _ := cfg.LogLevel(); level != slog.LevelDebug {
		t.Fatalf("log level: got %v", level)
	}
	// Unset fields keep their defaults.
	if cfg.Theme.Selection != "4" {
		t.Fatalf("theme default lost: %q", cfg.Theme.Selection)
	}

	opt, err := cfg.MarkupOptions()
	if err != nil {
		t.Fatalf("markup options: %v", err)
	}
	if len(opt.TableAttrs) != 2 || opt.TableAttrs[0].Name != "border" || opt.TableAttrs[1].Name != "class" {
		t.Fatalf("attrs should be sorted by name: %+v", opt.TableAttrs)
	}
	if got := opt.CellStyle.String(); got != "padding: 4px;" {
		t.Fatalf("cell style: got %q", got)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	path := writeFile(t, "inkwell.jsonc", `{
  // comments and trailing commas are fine
  "table": {"rows": 5, "cols": 1,},
  "dialog": {"create_delay": "1s"},
}`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Table.Rows != 5 || cfg.Table.Cols != 1 {
		t.Fatalf("dims: got %dx%d, want 5x1", cfg.Table.Rows, cfg.Table.Cols)
	}
	if cfg.Dialog.CreateDelay.Std() != time.Second {
		t.Fatalf("delay: got %s", cfg.Dialog.CreateDelay.Std())
	}
}

func TestLoadFile_RejectsUnknownFields(t *testing.T) {
	for name, content := range map[string]string{
		"bad.yaml": "table:\n  rowz: 3\n",
		"bad.json": `{"tabel": {}}`,
	} {
		if _, err := LoadFile(writeFile(t, name, content)); err == nil {
			t.Fatalf("%s: expected unknown field error", name)
		}
	}
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	_, err := LoadFile(writeFile(t, "inkwell.toml", "x = 1"))
	if err == nil || !strings.Contains(err.Error(), "unsupported config format") {
		t.Fatalf("err: got %v", err)
	}
}

func TestValidate_JoinsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Table.Rows = 0
	cfg.Table.Cols = -1
	cfg.Table.CellStyle = "nonsense"
	cfg.Toolbar.FontSizes = []int{12, 0}
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{"table.rows", "table.cols", "table.cell_style", "toolbar.font_sizes[1]", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadFile_EmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Table.Rows != 2 {
		t.Fatalf("rows: got %d, want 2", cfg.Table.Rows)
	}
}
