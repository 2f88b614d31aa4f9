package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jacoelho/gl/internal/gl/token"
)

// Format determines how tokens and diagnostics are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("format must be one of: text, json, yaml")

// ParseFormat resolves a --format value.
func ParseFormat(input string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(input))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrUnknownFormat, input)
	}
}

// Position is the serialised form of token.Position.
type Position struct {
	Index  int `json:"index" yaml:"index"`
	Lineno int `json:"lineno" yaml:"lineno"`
	Column int `json:"column" yaml:"column"`
}

// Record is the serialised form of a token. Text is present only for kinds
// that carry a payload, so an empty STRING keeps its "text" field.
type Record struct {
	Kind  string   `json:"kind" yaml:"kind"`
	Text  *string  `json:"text,omitempty" yaml:"text,omitempty"`
	File  string   `json:"file" yaml:"file"`
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// Records maps tokens to their serialised form.
func Records(tokens []token.Token) []Record {
	records := make([]Record, 0, len(tokens))
	for _, tok := range tokens {
		record := Record{
			Kind:  tok.Kind.String(),
			File:  tok.Filename,
			Start: mapPosition(tok.Start),
			End:   mapPosition(tok.End),
		}
		if tok.Kind.HasText() {
			text := tok.Text
			record.Text = &text
		}
		records = append(records, record)
	}

	return records
}

func mapPosition(p token.Position) Position {
	return Position{
		Index:  p.Index,
		Lineno: p.Lineno,
		Column: p.Column,
	}
}

// WriteTokens prints a token stream in the given format.
func WriteTokens(w io.Writer, format Format, tokens []token.Token) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, Records(tokens))
	case FormatYAML:
		return writeYAML(w, Records(tokens))
	case FormatText:
		fallthrough
	default:
		for _, tok := range tokens {
			if _, err := fmt.Fprintf(w, "%s:%s\t%s\n", tok.Filename, tok.Start, tok); err != nil {
				return err
			}
		}
		return nil
	}
}

// Failure is the serialised form of a lexical error.
type Failure struct {
	File    string     `json:"file" yaml:"file"`
	Code    token.Code `json:"code" yaml:"code"`
	Line    int        `json:"line" yaml:"line"`
	Column  int        `json:"column" yaml:"column"`
	Message string     `json:"message" yaml:"message"`
}

// NewFailure maps a lexical error to its report form.
func NewFailure(lexErr *token.Error) Failure {
	span := lexErr.Span()
	return Failure{
		File:    lexErr.Token.Filename,
		Code:    lexErr.Code,
		Line:    span.Line,
		Column:  span.Column,
		Message: lexErr.Message(),
	}
}

// WriteFailure prints a lexical error. Text output is the rendered diagnostic.
func WriteFailure(w io.Writer, format Format, lexErr *token.Error) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, NewFailure(lexErr))
	case FormatYAML:
		return writeYAML(w, NewFailure(lexErr))
	case FormatText:
		fallthrough
	default:
		_, err := fmt.Fprintln(w, lexErr.Error())
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	payload, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	_, err = w.Write(payload)
	return err
}
