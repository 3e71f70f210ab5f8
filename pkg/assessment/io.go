package assessment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Save writes an assessment to disk as JSON.
func Save(path string, a *Assessment) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for assessment: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling assessment: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing assessment: %w", err)
	}

	return nil
}

// Load reads an assessment from disk. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func Load(path string) (*Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading assessment: %w", err)
	}

	var a Assessment
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("parsing assessment yaml: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("unmarshaling assessment: %w", err)
		}
	}

	return &a, nil
}
