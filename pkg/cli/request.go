package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRequest loads a YAML or JSON file into the provided struct.
// A path of "-" reads from stdin.
func LoadRequest(path string, v any) error {
	if path == "-" {
		return LoadRequestFrom(os.Stdin, v)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	return ParseRequest(data, path, v)
}

// ParseRequest parses request data based on file extension.
// .yaml and .yml are YAML, .json is JSON, anything else is tried as JSON
// then YAML.
func ParseRequest(data []byte, filename string, v any) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			if err2 := yaml.Unmarshal(data, v); err2 != nil {
				return fmt.Errorf("failed to parse file (tried JSON and YAML)")
			}
		}
	}

	return nil
}

// LoadRequestFrom loads a request from r, trying JSON first, then YAML.
func LoadRequestFrom(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return ParseRequest(data, "", v)
}
