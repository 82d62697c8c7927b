package names

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"xwing-inventory/core/item"

	"gopkg.in/yaml.v3"
)

// LegacySuffix marks ids that refer to yasb's first-edition records.
const LegacySuffix = "-legacyyasb"

//go:embed overrides.yaml
var defaultTableYAML []byte

// Canonicalize keeps letters, digits and '(' from name, maps '(' to '-' and
// lowercases ASCII letters.
func Canonicalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '(':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

type key struct {
	kind item.Kind
	name string
}

// Table is the immutable set of naming exceptions.
type Table struct {
	literal     map[string]struct{}
	legacyShips map[string]struct{}
	overrides   map[key]string
}

type tableFile struct {
	LiteralLegacy []string                     `yaml:"literal_legacy"`
	LegacyShips   []string                     `yaml:"legacy_ships"`
	Overrides     map[string]map[string]string `yaml:"overrides"`
}

// NewTable parses a YAML exception table.
func NewTable(r io.Reader) (*Table, error) {
	var f tableFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode name table: %w", err)
	}

	t := &Table{
		literal:     make(map[string]struct{}, len(f.LiteralLegacy)),
		legacyShips: make(map[string]struct{}, len(f.LegacyShips)),
		overrides:   make(map[key]string),
	}
	for _, name := range f.LiteralLegacy {
		t.literal[name] = struct{}{}
	}
	for _, name := range f.LegacyShips {
		t.legacyShips[name] = struct{}{}
	}
	for kindName, entries := range f.Overrides {
		kind, err := item.ParseKind(kindName)
		if err != nil {
			return nil, fmt.Errorf("name table overrides: %w", err)
		}
		for from, to := range entries {
			if to == "" {
				return nil, fmt.Errorf("name table override %s/%s has an empty target", kindName, from)
			}
			t.overrides[key{kind: kind, name: from}] = to
		}
	}
	return t, nil
}

// Len returns the number of per-kind overrides.
func (t *Table) Len() int {
	return len(t.overrides)
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(bytes.NewReader(defaultTableYAML))
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultTable returns the embedded exception table.
func DefaultTable() *Table {
	return defaultTable()
}

// Resolver maps display names to xws ids using a Table.
type Resolver struct {
	table *Table
}

// NewResolver returns a resolver over table. A nil table selects the default.
func NewResolver(table *Table) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	return &Resolver{table: table}
}

// Resolve returns the xws id for a display name of the given kind.
func (r *Resolver) Resolve(name string, kind item.Kind) string {
	canonical := Canonicalize(name)

	// These display strings canonicalize onto a different, current component.
	if _, ok := r.table.literal[name]; ok {
		return canonical + LegacySuffix
	}

	if id, ok := r.table.overrides[key{kind: kind, name: canonical}]; ok {
		return id
	}

	if kind == item.Ship {
		if _, ok := r.table.legacyShips[canonical]; ok {
			return canonical + LegacySuffix
		}
	}

	return canonical
}

// Item resolves name and returns it as an Item of the given kind.
func (r *Resolver) Item(name string, kind item.Kind) item.Item {
	return item.New(kind, r.Resolve(name, kind))
}

// Resolve uses the default table.
func Resolve(name string, kind item.Kind) string {
	return NewResolver(nil).Resolve(name, kind)
}
