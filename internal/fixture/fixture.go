// Package fixture loads end-to-end resolution scenarios from a YAML
// file, so they are maintained as data rather than as inline Go literals
// scattered across test files. It is test-only: nothing outside
// _test.go files imports this package.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Scenario is one row of the end-to-end table: a format, a set of named
// bindings (raw template strings keyed by reference name), the reference
// to resolve, and the expected resolved value. Cyclic marks scenarios
// whose bindings contain a dependency cycle.
type Scenario struct {
	Name     string            `yaml:"name"`
	Format   string            `yaml:"format"` // "standard" or "reduced"
	Bindings map[string]string `yaml:"bindings"`
	Resolve  string            `yaml:"resolve"`
	Want     string            `yaml:"want"`
	WantOK   bool              `yaml:"want_ok"`
	Cyclic   bool              `yaml:"cyclic"`
}

// Load reads and decodes a scenarios file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("fixture: decode %s: %w", path, err)
	}
	return scenarios, nil
}
