// Package catalog holds the read-only reference tables the damage engine is
// constructed with: natures, items, abilities, species, and moves. Each
// table is loaded once from YAML and never mutated afterwards; the engine
// only performs lookups against them.
package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// decodeFile reads path and strictly decodes its YAML into out, rejecting
// unknown fields so catalog typos fail loudly at load time.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parsing %q: %w", path, err)
	}
	return nil
}
