// Package scanner turns source text into tokens.
//
// A Scanner stops at the first lexical error. The error is a *token.Error
// that renders a source-anchored diagnostic; the token slice then ends with a
// synthesized EOF token at the error location.
package scanner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jacoelho/gl/internal/gl/charclass"
	"github.com/jacoelho/gl/internal/gl/token"
)

// eof marks exhausted input.
const eof rune = -1

var punctuations = map[rune]token.Kind{
	';': token.Semicolon,
	'(': token.LParen,
	')': token.RParen,
	',': token.Comma,
	'{': token.LBrace,
	'}': token.RBrace,
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithStrictPunctuation rejects punctuation characters that do not form a
// token instead of skipping them.
func WithStrictPunctuation() Option {
	return func(s *Scanner) {
		s.strict = true
	}
}

// Scanner holds the cursor state of a single scan.
type Scanner struct {
	filename string
	source   []rune
	offset   int

	lines     []string
	startLine int
	nextLine  int
	lineText  string

	position token.Position
	current  rune
	tokens   []token.Token

	strict bool
	done   bool
	err    error
}

// New prepares a scan of source. startLine is the 0-based line number of the
// first line, which allows scanning fragments of a larger file.
func New(filename, source string, startLine int, opts ...Option) *Scanner {
	s := &Scanner{
		filename:  filename,
		source:    []rune(source),
		lines:     splitLines(source),
		startLine: startLine,
		position:  token.NewPosition(0, startLine, 0),
	}

	for _, opt := range opts {
		opt(s)
	}

	if len(s.lines) > 0 {
		s.lineText = s.lines[0]
		s.nextLine = 1
	} else {
		s.lineText = source
	}

	s.current = s.advanceChar()
	return s
}

// Tokenize scans source in one call.
func Tokenize(filename, source string, startLine int, opts ...Option) ([]token.Token, error) {
	s := New(filename, source, startLine, opts...)
	if err := s.Scan(); err != nil {
		return nil, err
	}
	return s.Tokens(), nil
}

// Tokens returns a copy of the tokens produced so far.
func (s *Scanner) Tokens() []token.Token {
	return slices.Clone(s.tokens)
}

// Failed reports whether the scan stopped on a lexical error.
func (s *Scanner) Failed() bool {
	return s.err != nil
}

// Scan runs the scanner to completion. It returns nil when the whole input was
// tokenized, otherwise a *token.Error. Calling Scan again returns the same
// result.
func (s *Scanner) Scan() error {
	if s.done {
		return s.err
	}

	s.err = s.run()
	s.done = true
	return s.err
}

func (s *Scanner) run() error {
	for {
		switch {
		case s.current == eof:
			s.emitEOF()
			return nil
		case charclass.IsSpace(s.current):
			s.step()
		case charclass.IsDigit(s.current):
			if err := s.scanInteger(); err != nil {
				return err
			}
		case charclass.IsLetter(s.current):
			if err := s.scanIdentifier(); err != nil {
				return err
			}
		case charclass.IsPunctuation(s.current):
			if err := s.scanPunctuation(); err != nil {
				return err
			}
		case s.current == charclass.Quote:
			if err := s.scanString(); err != nil {
				return err
			}
		default:
			return s.illegalChar()
		}
	}
}

func (s *Scanner) scanInteger() error {
	start, line := s.position.Copy(), s.lineText

	var b strings.Builder
	for charclass.IsDigit(s.current) {
		b.WriteRune(s.current)
		s.advance()
	}

	if err := s.checkTrailing("integer", b.String()); err != nil {
		return err
	}

	s.emit(token.Integer, b.String(), line, start)
	return nil
}

func (s *Scanner) scanIdentifier() error {
	start, line := s.position.Copy(), s.lineText

	var b strings.Builder
	for charclass.IsLetterOrDigit(s.current) {
		b.WriteRune(s.current)
		s.advance()
	}

	if err := s.checkTrailing("identifier", b.String()); err != nil {
		return err
	}

	s.emit(token.Identifier, b.String(), line, start)
	return nil
}

func (s *Scanner) scanPunctuation() error {
	kind, ok := punctuations[s.current]
	if !ok {
		if s.strict {
			return s.illegalChar()
		}
		s.advance()
		return nil
	}

	start, line := s.position.Copy(), s.lineText
	s.advance()
	s.emit(kind, "", line, start)
	return nil
}

// scanString decodes a quoted literal. A backslash escapes the next
// character; \n decodes to a newline and leaves the escape pending, so the
// character after it is also taken literally.
func (s *Scanner) scanString() error {
	start, line := s.position.Copy(), s.lineText
	s.advance()

	var b strings.Builder
	escaped := false
	for escaped || s.current != charclass.Quote {
		if s.current == eof {
			return s.invalidSyntax("unterminated string literal")
		}

		switch {
		case escaped && s.current == 'n':
			b.WriteByte('\n')
		case escaped:
			b.WriteRune(s.current)
			escaped = false
		case s.current == '\\':
			escaped = true
		default:
			b.WriteRune(s.current)
		}
		s.step()
	}
	s.advance()

	if err := s.checkTrailing("string", fmt.Sprintf("%q", b.String())); err != nil {
		return err
	}

	s.emit(token.String, b.String(), line, start)
	return nil
}

// checkTrailing validates the character following a completed lexeme: only
// end of input, whitespace or punctuation may follow.
func (s *Scanner) checkTrailing(what, lexeme string) error {
	if s.current == eof || charclass.IsSpace(s.current) || charclass.IsPunctuation(s.current) {
		return nil
	}

	if charclass.IsTokenStart(s.current) {
		return s.invalidSyntax(fmt.Sprintf("unexpected %q after %s %s", s.current, what, lexeme))
	}
	return s.illegalChar()
}

func (s *Scanner) emit(kind token.Kind, text, line string, start token.Position) {
	s.tokens = append(s.tokens, token.New(kind, text, s.filename, line, start, s.position.Copy()))
}

// emitEOF appends a zero-width EOF at the end of the last token, or at the
// cursor when nothing was scanned. Its line text is that of the line it sits on.
func (s *Scanner) emitEOF() {
	pos := s.position.Copy()
	if n := len(s.tokens); n > 0 {
		pos = s.tokens[n-1].End
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.filename, s.lineAt(pos.Lineno), pos, pos))
}

func (s *Scanner) illegalChar() error {
	return s.errorToken().IllegalChar()
}

func (s *Scanner) invalidSyntax(detail string) error {
	return s.errorToken().InvalidSyntax(detail)
}

// errorToken records a terminal EOF at the cursor and moves past the current
// line.
func (s *Scanner) errorToken() token.Token {
	start := s.position.Copy()
	tok := token.New(token.EOF, "", s.filename, s.lineText, start, start)
	s.tokens = append(s.tokens, tok)

	for s.current != eof && s.current != '\n' {
		s.advance()
	}
	if s.current == '\n' {
		s.step()
	}

	return tok
}
