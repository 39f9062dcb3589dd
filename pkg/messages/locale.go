package messages

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LocaleTable maps message keys to translated templates. A table may cover
// any subset of the catalog; uncovered keys fall back to the base template.
type LocaleTable map[Key]string

// activeLocale is consulted before the base catalog. It is installed once
// during process startup and never mutated afterwards, so reads need no
// locking.
var activeLocale LocaleTable

// LoadLocaleFile parses a YAML locale table. A key that does not exist in
// the base catalog is a translation-authoring defect and fails the load.
func LoadLocaleFile(path string) (LocaleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale table: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse locale table %s: %w", path, err)
	}

	table := make(LocaleTable, len(raw))
	for k, tmpl := range raw {
		key := Key(k)
		if !Has(key) {
			return nil, fmt.Errorf("locale table %s: %w: %s", path, ErrUnknownKey, k)
		}
		table[key] = tmpl
	}

	return table, nil
}

// UseLocale installs table as the active override set. Call during process
// startup, before the first render. Passing nil restores the base catalog.
func UseLocale(table LocaleTable) {
	activeLocale = table
}
