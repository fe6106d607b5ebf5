// Package vocabulary maps coded catalog values to their display text and
// validates coded fields against the configured vocabularies.
package vocabulary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry pairs a coded value with its human-readable display text.
type Entry struct {
	Value string `yaml:"value" json:"value"`
	Text  string `yaml:"text" json:"text"`
}

// Table is the host-owned configuration table: an ordered entry list per
// field name. It is loaded once at startup and never mutated afterwards.
type Table map[string][]Entry

// Load reads a vocabulary table from a YAML file keyed by field name.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	return table, nil
}

// DisplayVal returns the display text configured for a field's coded value.
//
// Lookups fail fast: a field missing from the table, or a value with no
// entry, returns an error rather than a fallback string. Callers are
// expected to propagate the error, not recover with a default.
func (t Table) DisplayVal(field, value string) (string, error) {
	entries, ok := t[field]
	if !ok {
		return "", fmt.Errorf("field %s not configured in vocabulary table", field)
	}

	for _, e := range entries {
		if e.Value == value {
			return e.Text, nil
		}
	}

	return "", fmt.Errorf("value %s not found in vocabulary %s", value, field)
}

// Fields returns the configured field names, for inspection tooling.
func (t Table) Fields() []string {
	fields := make([]string, 0, len(t))
	for field := range t {
		fields = append(fields, field)
	}
	return fields
}
