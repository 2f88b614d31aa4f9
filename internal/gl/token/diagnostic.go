package token

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrIllegalCharacter = errors.New("illegal character")
	ErrInvalidSyntax    = errors.New("invalid syntax")
)

// Code classifies lexical failures.
type Code string

const (
	CodeIllegalCharacter Code = "illegal_character"
	CodeInvalidSyntax    Code = "invalid_syntax"
)

// Label is the heading used in the last line of a rendered diagnostic.
func (c Code) Label() string {
	switch c {
	case CodeIllegalCharacter:
		return "IllegalCharacter"
	case CodeInvalidSyntax:
		return "InvalidSyntax"
	default:
		return string(c)
	}
}

// Span identifies a 1-based source location.
type Span struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Error is a lexical failure anchored at a token.
type Error struct {
	Code   Code
	Token  Token
	Detail string
}

// Error returns the rendered diagnostic.
func (e *Error) Error() string {
	return Render(e.Token, e.Message())
}

// Unwrap exposes ErrIllegalCharacter or ErrInvalidSyntax for errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case CodeIllegalCharacter:
		return ErrIllegalCharacter
	case CodeInvalidSyntax:
		return ErrInvalidSyntax
	default:
		return nil
	}
}

// Message is the detail line without the source excerpt.
func (e *Error) Message() string {
	if e.Detail == "" {
		return e.Code.Label()
	}
	return e.Code.Label() + ": " + e.Detail
}

// Span returns the 1-based location of the error.
func (e *Error) Span() Span {
	return Span{
		Line:   e.Token.Start.Lineno + 1,
		Column: e.Token.Start.Column + 1,
	}
}

// Render formats a four-line diagnostic pointing at the token start:
//
//	  File "main.gl", line 3
//	    foo(123abc);
//	           ^
//	InvalidSyntax: ...
//
// The caret is shifted left by the leading whitespace trimmed from the line.
func Render(tok Token, detail string) string {
	line := strings.ReplaceAll(tok.LineText, "\t", " ")
	display := strings.TrimLeftFunc(line, unicode.IsSpace)
	leading := utf8.RuneCountInString(line) - utf8.RuneCountInString(display)

	display = strings.TrimSuffix(display, "\n")
	display = strings.TrimSuffix(display, "\r")
	display = strings.TrimRightFunc(display, unicode.IsSpace)

	pad := max(tok.Start.Column-leading, 0)

	var b strings.Builder
	fmt.Fprintf(&b, "  File \"%s\", line %d\n", tok.Filename, tok.Start.Lineno+1)
	fmt.Fprintf(&b, "    %s\n", display)
	fmt.Fprintf(&b, "    %s^\n", strings.Repeat(" ", pad))
	b.WriteString(detail)
	return b.String()
}
