package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the parsed manifest.
type File struct {
	Version string     `yaml:"version"`
	Package string     `yaml:"package"`
	Output  string     `yaml:"output,omitempty"`
	Types   []TypeSpec `yaml:"types"`
}

// TypeSpec selects one type and optionally overrides field directives.
// Field keys accept Go names ("Title") or snake_case ("title"); values are
// raw directive items as they would appear in a rand tag.
type TypeSpec struct {
	Name   string              `yaml:"name"`
	Fields map[string][]string `yaml:"fields,omitempty"`
}

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var mf File

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *File) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	if mf.Package == "" {
		mf.Package = "."
	}
}

// Marshal serializes a File to YAML.
func Marshal(mf *File) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a File to the given path.
func WriteFile(mf *File, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
