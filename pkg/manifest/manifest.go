// Package manifest describes which template files render into which output
// paths. The manifest is deliberately dumb data: the mapping carries no
// logic, so it lives in a YAML file next to the templates it names.
package manifest

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Target maps one template file to one destination path.
type Target struct {
	// Template is the template source path, relative to the template root.
	Template string `yaml:"template" validate:"required"`
	// Output is the destination path for the rendered text.
	Output string `yaml:"output" validate:"required"`
	// Delimiter optionally overrides the placeholder marker for this target.
	// Must be a single character when set.
	Delimiter string `yaml:"delimiter,omitempty" validate:"omitempty,len=1"`
}

// DelimiterRune returns the override delimiter, or zero when the target uses
// the engine default.
func (t Target) DelimiterRune() rune {
	for _, r := range t.Delimiter {
		return r
	}
	return 0
}

// Manifest is the full set of render targets for one run.
type Manifest struct {
	Targets []Target `yaml:"targets" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Parse decodes and validates a YAML manifest.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := validate.Struct(m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: invalid: %w", err)
	}
	return m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return m, nil
}
