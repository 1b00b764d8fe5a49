package content

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML list of entries.
func Decode[E any](r io.Reader) ([]E, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	var entries []E
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	return entries, nil
}

// LoadFile reads a YAML list of entries from path.
func LoadFile[E any](path string) ([]E, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer file.Close()

	entries, err := Decode[E](file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	return entries, nil
}
