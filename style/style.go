// Package style implements the ordered style map shared by table cells and
// rich-text spans.
//
// A Map iterates in insertion order. Overwriting a key keeps its position,
// so serializing the same Map twice always yields the same string.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Well-known declaration keys.
const (
	FontWeight      = "font-weight"
	FontStyle       = "font-style"
	TextDecoration  = "text-decoration"
	FontSizeKey     = "font-size"
	Color           = "color"
	BackgroundColor = "background-color"
)

// Decl is one `key: value` declaration.
type Decl struct {
	Key   string
	Value string
}

// Map is an insertion-ordered set of declarations. The zero value is an
// empty map ready to use.
type Map struct {
	decls []Decl
}

// Of builds a Map from alternating key, value pairs. A trailing key without
// a value is ignored.
func Of(kv ...string) Map {
	var m Map
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}

// Bold, Italic and Underline are the toolbar's toggle styles.
func Bold() Map      { return Of(FontWeight, "bold") }
func Italic() Map    { return Of(FontStyle, "italic") }
func Underline() Map { return Of(TextDecoration, "underline") }

// FontSize returns a font-size declaration in pixels.
func FontSize(px int) Map { return Of(FontSizeKey, strconv.Itoa(px)+"px") }

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func (m Map) index(key string) int {
	for i, d := range m.decls {
		if d.Key == key {
			return i
		}
	}
	return -1
}

// Len returns the number of declarations.
func (m Map) Len() int { return len(m.decls) }

// Set writes key. New keys are appended; existing keys are overwritten in
// place. Blank keys are ignored.
func (m *Map) Set(key, value string) {
	key = normalizeKey(key)
	if key == "" {
		return
	}
	value = strings.TrimSpace(value)
	// Copies of a Map share backing storage; write to a fresh slice.
	next := make([]Decl, len(m.decls), len(m.decls)+1)
	copy(next, m.decls)
	if i := m.index(key); i >= 0 {
		next[i].Value = value
	} else {
		next = append(next, Decl{Key: key, Value: value})
	}
	m.decls = next
}

// Get returns the value stored for key.
func (m Map) Get(key string) (string, bool) {
	if i := m.index(normalizeKey(key)); i >= 0 {
		return m.decls[i].Value, true
	}
	return "", false
}

// Has reports whether key is present with exactly value.
func (m Map) Has(key, value string) bool {
	got, ok := m.Get(key)
	return ok && got == strings.TrimSpace(value)
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	i := m.index(normalizeKey(key))
	if i < 0 {
		return false
	}
	m.decls = append(m.decls[:i:i], m.decls[i+1:]...)
	return true
}

// Merge writes every declaration of other into m, in other's order.
func (m *Map) Merge(other Map) {
	for _, d := range other.decls {
		m.Set(d.Key, d.Value)
	}
}

// Decls returns a copy of the declarations in iteration order.
func (m Map) Decls() []Decl {
	if len(m.decls) == 0 {
		return nil
	}
	return append([]Decl(nil), m.decls...)
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	return Map{decls: m.Decls()}
}

// Equal reports whether both maps hold the same declarations in the same
// order.
func (m Map) Equal(other Map) bool {
	if len(m.decls) != len(other.decls) {
		return false
	}
	for i := range m.decls {
		if m.decls[i] != other.decls[i] {
			return false
		}
	}
	return true
}

// String renders the map as inline CSS: each entry as `key: value;`,
// separated by a single space.
func (m Map) String() string {
	if len(m.decls) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, d := range m.decls {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.Key)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

// Parse reads inline CSS such as `font-weight: bold; color: #ff0000`.
// Empty declarations (from doubled or trailing semicolons) are skipped.
func Parse(css string) (Map, error) {
	var m Map
	for _, part := range strings.Split(css, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		if !ok || strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			return Map{}, fmt.Errorf("style: malformed declaration %q", part)
		}
		m.Set(key, value)
	}
	return m, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(css string) Map {
	m, err := Parse(css)
	if err != nil {
		panic(err)
	}
	return m
}
