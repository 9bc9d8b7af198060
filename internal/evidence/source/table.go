package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table is an immutable domain → raw credibility value mapping.
// Values keep whatever type the backing file used; Lookup coerces them.
type Table struct {
	entries map[string]any
}

// NewTable copies entries into a Table, normalizing keys to trimmed lowercase.
func NewTable(entries map[string]any) *Table {
	normalized := make(map[string]any, len(entries))
	for k, v := range entries {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		normalized[key] = v
	}
	return &Table{entries: normalized}
}

// EmptyTable returns a table for which every lookup misses.
func EmptyTable() *Table {
	return &Table{entries: map[string]any{}}
}

// LoadTable reads a reputation table from a JSON file, or YAML when the
// extension is .yaml or .yml. A missing or unparseable file yields an empty
// table together with an error the caller should log; it is never fatal.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EmptyTable(), fmt.Errorf("read reputation table %q: %w", path, err)
	}

	var entries map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return EmptyTable(), fmt.Errorf("parse reputation table %q: %w", path, err)
	}

	return NewTable(entries), nil
}

// Len reports the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// get treats a nil value the same as a missing key.
func (t *Table) get(key string) (any, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.entries[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
