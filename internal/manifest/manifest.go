package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Metadata holds the optional override fields a manifest may carry.
// Fields left empty in the manifest do not override inline values.
type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`
}

// DefaultName returns the conventional manifest filename for a source file:
// <stem>.manifest.json.
func DefaultName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".manifest.json"
}

// LoadSidecar loads the manifest for a source file. If manifestName is empty
// the default naming convention is used. The manifest is resolved relative to
// the source file's directory. A missing or unparsable manifest returns zero
// Metadata; callers treat that as "no override".
func LoadSidecar(sourcePath, manifestName string) Metadata {
	if manifestName == "" {
		manifestName = DefaultName(sourcePath)
	}
	path := filepath.Join(filepath.Dir(sourcePath), manifestName)

	meta, err := Parse(path)
	if err != nil {
		return Metadata{}
	}
	return meta
}

// Parse reads a manifest file and returns its metadata fields. Files named
// *.yaml or *.yml are parsed as YAML; everything else as JSON.
func Parse(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var meta Metadata
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &meta); err != nil {
			return Metadata{}, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &meta); err != nil {
			return Metadata{}, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	}
	return meta, nil
}
