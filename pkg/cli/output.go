package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatJSON outputs as indented JSON (default)
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs as YAML
	FormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a --format flag value. Empty means JSON.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// OutputOptions configures output behavior
type OutputOptions struct {
	// Format is the output format (json, yaml)
	Format OutputFormat

	// File is the output file path (empty for stdout)
	File string

	// Indent is the indentation for JSON output, two spaces if empty
	Indent string

	// JQ is an optional jq expression applied before formatting
	JQ string

	// Writer is an optional custom writer (overrides File)
	Writer io.Writer
}

// Output writes the result to the configured destination.
//
// A json.RawMessage result is re-indented as-is, keeping key order and
// number formatting. When JQ is set each value the expression yields is
// written in turn.
func Output(result any, opts OutputOptions) error {
	var w io.Writer = os.Stdout

	if opts.Writer != nil {
		w = opts.Writer
	} else if opts.File != "" {
		f, err := os.Create(opts.File)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	values := []any{result}
	if opts.JQ != "" {
		var err error
		values, err = ApplyJQ(opts.JQ, result)
		if err != nil {
			return err
		}
	}

	for _, v := range values {
		if err := outputValue(w, v, opts); err != nil {
			return err
		}
	}
	return nil
}

func outputValue(w io.Writer, v any, opts OutputOptions) error {
	switch opts.Format {
	case FormatJSON, "":
		return outputJSON(w, v, opts.Indent)
	case FormatYAML:
		return outputYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

func outputJSON(w io.Writer, result any, indent string) error {
	if indent == "" {
		indent = "  "
	}

	if raw, ok := result.(json.RawMessage); ok {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", indent); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

func outputYAML(w io.Writer, result any) error {
	var data []byte
	var err error
	if raw, ok := result.(json.RawMessage); ok {
		data, err = yaml.JSONToYAML(raw)
	} else {
		data, err = yaml.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
