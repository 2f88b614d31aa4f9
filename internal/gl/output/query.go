package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jacoelho/gl/internal/gl/token"
	"github.com/theory/jsonpath"
)

var ErrInvalidQuery = errors.New("invalid query")

// Query selects values from the serialised token stream with a JSONPath
// expression, e.g. `$[?@.kind == "IDENTIFIER"].text`.
func Query(tokens []token.Token, expr string) ([]any, error) {
	path, err := parseQuery(expr)
	if err != nil {
		return nil, err
	}

	// Round-trip through JSON so the selector sees plain maps and slices.
	payload, err := json.Marshal(Records(tokens))
	if err != nil {
		return nil, fmt.Errorf("encode tokens: %w", err)
	}

	var data any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}

	results := path.Select(data)
	values := make([]any, 0, len(results))
	for _, result := range results {
		values = append(values, result)
	}

	return values, nil
}

// ValidateQuery checks that expr is a valid JSONPath expression.
func ValidateQuery(expr string) error {
	_, err := parseQuery(expr)
	return err
}

func parseQuery(expr string) (*jsonpath.Path, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidQuery)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidQuery, expr, err)
	}
	return path, nil
}

// WriteValues prints query results. Text output writes one value per line,
// strings verbatim and everything else as compact JSON.
func WriteValues(w io.Writer, format Format, values []any) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, values)
	case FormatYAML:
		return writeYAML(w, values)
	case FormatText:
		fallthrough
	default:
		for _, value := range values {
			line, err := textValue(value)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
}

func textValue(value any) (string, error) {
	if str, ok := value.(string); ok {
		return str, nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}
	return string(payload), nil
}
