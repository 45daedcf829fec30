package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutputSuffix names generated files, e.g. "user_netabase.go".
const DefaultOutputSuffix = "_netabase.go"

// Manifest is the root of the YAML generator manifest. It declares the
// transform registry and output options.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Output configures where and how generated files are written.
	Output OutputOptions `yaml:"output,omitempty"`

	// Transforms declares the named transform functions attributes may
	// reference.
	Transforms []TransformDef `yaml:"transforms,omitempty"`
}

// OutputOptions configures generated artifacts.
type OutputOptions struct {
	// Suffix is appended to the snake_cased type name to form the
	// generated filename. Defaults to DefaultOutputSuffix.
	Suffix string `yaml:"suffix,omitempty"`
}

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return ParseManifest(data)
}

// ParseManifest parses YAML data into a Manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var mf Manifest

	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *Manifest) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	if mf.Output.Suffix == "" {
		mf.Output.Suffix = DefaultOutputSuffix
	}

	for i := range mf.Transforms {
		t := &mf.Transforms[i]
		if t.Func == "" {
			t.Func = t.Name
		}
	}
}

// Marshal serializes a Manifest to YAML.
func Marshal(mf *Manifest) ([]byte, error) {
	return yaml.Marshal(mf)
}
