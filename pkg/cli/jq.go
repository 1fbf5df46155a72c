package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itchyny/gojq"
)

// ApplyJQ runs a jq expression against result and returns every value it
// yields. The result goes through JSON first, so numbers become float64.
func ApplyJQ(expr string, result any) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression %q: %w", expr, err)
	}

	raw, ok := result.(json.RawMessage)
	if !ok {
		raw, err = json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("jq input: %w", err)
		}
	}
	var input any
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("jq input: %w", err)
	}

	var out []any
	iter := query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return nil, fmt.Errorf("jq: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}
