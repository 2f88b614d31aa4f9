package token

import "fmt"

// Kind is the closed set of token tags.
type Kind int

const (
	EOF Kind = iota
	Integer
	Identifier
	String
	Semicolon
	LParen
	RParen
	Comma
	LBrace
	RBrace
)

var kindNames = [...]string{
	EOF:        "EOF",
	Integer:    "INTEGER",
	Identifier: "IDENTIFIER",
	String:     "STRING",
	Semicolon:  "SEMICOLON",
	LParen:     "LPAREN",
	RParen:     "RPAREN",
	Comma:      "COMMA",
	LBrace:     "LBRACE",
	RBrace:     "RBRACE",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// HasText reports whether tokens of this kind carry a text payload.
func (k Kind) HasText() bool {
	switch k {
	case Integer, Identifier, String:
		return true
	default:
		return false
	}
}

// Token is a classified lexeme with its source location.
// Text is the payload of INTEGER, IDENTIFIER and STRING tokens (decoded for
// strings) and is empty for every other kind.
type Token struct {
	Kind     Kind
	Text     string
	Filename string
	LineText string
	Start    Position
	End      Position
}

// New creates a token. The text payload is dropped for kinds that carry none.
func New(kind Kind, text, filename, lineText string, start, end Position) Token {
	if !kind.HasText() {
		text = ""
	}

	return Token{
		Kind:     kind,
		Text:     text,
		Filename: filename,
		LineText: lineText,
		Start:    start.Copy(),
		End:      end.Copy(),
	}
}

// Copy returns an independent clone of the token.
func (t Token) Copy() Token {
	return t
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case Integer, Identifier:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}

// IllegalChar reports that the character at the token start belongs to no
// recognised class.
func (t Token) IllegalChar() *Error {
	detail := "illegal character"
	if r, ok := t.startRune(); ok {
		detail = fmt.Sprintf("illegal character %q", r)
	}

	return &Error{
		Code:   CodeIllegalCharacter,
		Token:  t,
		Detail: detail,
	}
}

// InvalidSyntax reports a malformed lexeme anchored at the token start.
func (t Token) InvalidSyntax(detail string) *Error {
	return &Error{
		Code:   CodeInvalidSyntax,
		Token:  t,
		Detail: detail,
	}
}

func (t Token) startRune() (rune, bool) {
	runes := []rune(t.LineText)
	if t.Start.Index < 0 || t.Start.Index >= len(runes) {
		return 0, false
	}
	return runes[t.Start.Index], true
}
