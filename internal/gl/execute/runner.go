package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/gl/internal/gl/config"
	"github.com/jacoelho/gl/internal/gl/exit"
	"github.com/jacoelho/gl/internal/gl/output"
	"github.com/jacoelho/gl/internal/gl/scanner"
	"github.com/jacoelho/gl/internal/gl/token"
	"go.uber.org/zap"
)

const stdinName = "<stdin>"

// Runner scans the configured files and writes their tokens.
type Runner struct {
	config    *config.Config
	logger    *zap.Logger
	input     io.Reader
	output    io.Writer
	errOutput io.Writer
}

// New creates a Runner writing to stdout and stderr.
func New(cfg *config.Config) (*Runner, *exit.Result) {
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, exit.Errorf("Error creating logger: %v\n", err)
	}

	return &Runner{
		config:    cfg,
		logger:    logger,
		input:     os.Stdin,
		output:    os.Stdout,
		errOutput: os.Stderr,
	}, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func (r *Runner) SetInput(in io.Reader) {
	r.input = in
}

func (r *Runner) SetOutput(w io.Writer) {
	r.output = w
}

func (r *Runner) SetErrorOutput(w io.Writer) {
	r.errOutput = w
}

func (r *Runner) SetLogger(logger *zap.Logger) {
	r.logger = logger
}

func (r *Runner) payloadWriter() io.Writer {
	if r.output == nil {
		return io.Discard
	}
	return r.output
}

func (r *Runner) errorWriter() io.Writer {
	if r.errOutput == nil {
		return io.Discard
	}
	return r.errOutput
}

func (r *Runner) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errorWriter(), format, args...)
}

// Run scans every configured file in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context) int {
	defer func() { _ = r.logger.Sync() }()

	for _, file := range r.config.Files {
		if err := ctx.Err(); err != nil {
			r.logf("Interrupted before %s: %v\n", file, err)
			return exit.CodeFailure
		}

		if code := r.runFile(file); code != exit.CodeSuccess {
			return code
		}
	}

	return exit.CodeSuccess
}

func (r *Runner) runFile(file string) int {
	name, source, err := r.readSource(file)
	if err != nil {
		r.logf("Error: %v\n", err)
		return exit.CodeFailure
	}

	log := r.logger.With(zap.String("file", name))
	log.Debug("scanning", zap.Int("bytes", len(source)), zap.Int("start_line", r.config.StartLine))

	tokens, err := scanner.Tokenize(name, source, r.config.StartLine-1, r.config.ScannerOptions()...)
	if err != nil {
		var lexErr *token.Error
		if !errors.As(err, &lexErr) {
			r.logf("Error: scan %s: %v\n", name, err)
			return exit.CodeFailure
		}

		log.Debug("lexical error",
			zap.String("code", string(lexErr.Code)),
			zap.Stringer("position", lexErr.Token.Start),
			zap.String("detail", lexErr.Detail),
		)
		if err := output.WriteFailure(r.errorWriter(), r.config.Format, lexErr); err != nil {
			r.logf("Error: failed to write diagnostic: %v\n", err)
		}
		return exit.CodeLexical
	}

	log.Debug("scanned", zap.Int("tokens", len(tokens)))

	if err := r.write(tokens); err != nil {
		r.logf("Error: %v\n", err)
		return exit.CodeFailure
	}

	return exit.CodeSuccess
}

func (r *Runner) write(tokens []token.Token) error {
	if r.config.Query == "" {
		if err := output.WriteTokens(r.payloadWriter(), r.config.Format, tokens); err != nil {
			return fmt.Errorf("failed to write tokens: %w", err)
		}
		return nil
	}

	values, err := output.Query(tokens, r.config.Query)
	if err != nil {
		return err
	}

	r.logger.Debug("query matched", zap.String("query", r.config.Query), zap.Int("values", len(values)))

	if err := output.WriteValues(r.payloadWriter(), r.config.Format, values); err != nil {
		return fmt.Errorf("failed to write query results: %w", err)
	}
	return nil
}

func (r *Runner) readSource(file string) (string, string, error) {
	if file == config.StdinFile {
		if r.input == nil {
			return stdinName, "", nil
		}
		data, err := io.ReadAll(r.input)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return stdinName, string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", file, err)
	}
	return file, string(data), nil
}
