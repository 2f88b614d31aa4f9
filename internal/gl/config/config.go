package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/gl/internal/gl/exit"
	"github.com/jacoelho/gl/internal/gl/output"
	"github.com/jacoelho/gl/internal/gl/scanner"
)

// StdinFile is the file argument that reads source from standard input.
const StdinFile = "-"

var (
	ErrNoArguments      = errors.New("no arguments provided")
	ErrNoSourceFiles    = errors.New("no source files specified")
	ErrInvalidStartLine = errors.New("start line must be at least 1")
)

// Config represents the complete configuration for the gl tool.
type Config struct {
	Files []string
	Debug bool

	// Scanner behaviour
	StartLine         int // 1-based line number of the first source line
	StrictPunctuation bool

	// Output
	Format output.Format
	Query  string
}

// ScannerOptions returns the scanner options selected by the flags.
func (c *Config) ScannerOptions() []scanner.Option {
	var opts []scanner.Option
	if c.StrictPunctuation {
		opts = append(opts, scanner.WithStrictPunctuation())
	}
	return opts
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoSourceFiles
	}

	if c.StartLine < 1 {
		return fmt.Errorf("%w, got: %d", ErrInvalidStartLine, c.StartLine)
	}

	if c.Query != "" {
		if err := output.ValidateQuery(c.Query); err != nil {
			return err
		}
	}

	for _, file := range c.Files {
		if file == StdinFile {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("source file %s not found: %w", file, err)
		}
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s\n", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		debug     = fs.Bool("debug", false, "Log scanner activity to stderr")
		format    = fs.String("format", string(output.FormatText), "Output format: text, json or yaml")
		query     = fs.String("query", "", "JSONPath expression applied to the token stream")
		startLine = fs.Int("start-line", 1, "Line number of the first source line")
		strict    = fs.Bool("strict-punctuation", false, "Reject punctuation that does not form a token")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage() + "\n")
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s\n", err, Usage())
	}

	parsedFormat, err := output.ParseFormat(*format)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s\n", err, Usage())
	}

	cfg := &Config{
		Files:             fs.Args(),
		Debug:             *debug,
		StartLine:         *startLine,
		StrictPunctuation: *strict,
		Format:            parsedFormat,
		Query:             *query,
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s\n", err, Usage())
	}

	return cfg, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `gl - source tokenizer

Usage: gl [options] <file1> [file2] ...

Options:
  --format FORMAT         Output format: text, json or yaml (default: text)
  --query EXPR            JSONPath expression applied to the token stream
  --start-line N          Line number of the first source line (default: 1)
  --strict-punctuation    Reject punctuation that does not form a token
  --debug                 Log scanner activity to stderr
  -h, --help              Show this help message

With several files, json and yaml output holds one document per file, in order.

Exit status is 0 on success, 1 on usage or I/O errors and 2 on lexical errors.

Examples:
  gl main.gl                                        # Print tokens
  gl --format json main.gl                          # Print tokens as JSON
  gl --query '$[?@.kind == "IDENTIFIER"].text' a.gl # List identifiers
  cat frag.gl | gl --start-line 40 -                # Scan stdin as line 40 onwards`
}
