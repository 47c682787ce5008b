// Package manifest describes which test-vector documents a run executes.
// A manifest is an ordered list of entries, each pairing a vector file with
// the algorithm, signature format, operation and skip policy to use.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sigvet/sigvet/internal/harness"
)

// Entry is one document execution.
type Entry struct {
	// File is the vector file path, relative to the manifest's VectorDir
	// unless absolute.
	File string `yaml:"file"`

	// Algorithm is the signature algorithm the vectors exercise, e.g.
	// "ECDSA", "RSA", "DSA", "EDDSA".
	Algorithm string `yaml:"algorithm"`

	// Format is the signature encoding: "RAW", "ASN1" (alias "ASN") or
	// "P1363".
	Format string `yaml:"format"`

	// Operation is "verify" (default) or "sign".
	Operation string `yaml:"operation,omitempty"`

	// AllowSkippingKeys tolerates groups with unsupported keys or
	// algorithms, e.g. uncommon curves.
	AllowSkippingKeys bool `yaml:"allowSkippingKeys,omitempty"`
}

// Manifest is a parsed run manifest.
type Manifest struct {
	// VectorDir is prepended to relative entry paths.
	VectorDir string `yaml:"vectorDir,omitempty"`

	// Entries are executed in order.
	Entries []Entry `yaml:"entries"`
}

// Load reads and validates a manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// Validate checks that every entry is complete and parseable.
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return fmt.Errorf("manifest has no entries")
	}
	for i, e := range m.Entries {
		if e.File == "" {
			return fmt.Errorf("entry %d: missing file", i)
		}
		if e.Algorithm == "" {
			return fmt.Errorf("entry %d (%s): missing algorithm", i, e.File)
		}
		if _, err := harness.ParseFormat(e.Format); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, e.File, err)
		}
		if _, err := harness.ParseOperation(e.Operation); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, e.File, err)
		}
	}
	return nil
}
