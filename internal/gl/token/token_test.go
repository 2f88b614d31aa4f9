package token

import (
	"errors"
	"testing"
)

func TestPositionCopyIsIndependent(t *testing.T) {
	t.Parallel()

	original := NewPosition(3, 1, 3)
	copied := original.Copy()
	copied.Column = 10

	if original.Column != 3 {
		t.Fatalf("original.Column = %d, want 3", original.Column)
	}
	if got := original.String(); got != "2:4" {
		t.Fatalf("String() = %q, want %q", got, "2:4")
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{name: "integer", tok: New(Integer, "42", "a.gl", "42", Position{}, Position{}), want: "INTEGER(42)"},
		{name: "identifier", tok: New(Identifier, "foo", "a.gl", "foo", Position{}, Position{}), want: "IDENTIFIER(foo)"},
		{name: "string", tok: New(String, "a\nb", "a.gl", `"a\nb"`, Position{}, Position{}), want: `STRING("a\nb")`},
		{name: "punctuation drops text", tok: New(LParen, "(", "a.gl", "(", Position{}, Position{}), want: "LPAREN"},
		{name: "eof", tok: New(EOF, "", "a.gl", "", Position{}, Position{}), want: "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.tok.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	t.Parallel()

	if got := Kind(99).String(); got != "Kind(99)" {
		t.Fatalf("Kind(99).String() = %q", got)
	}
}

func TestIllegalCharNamesCharacter(t *testing.T) {
	t.Parallel()

	tok := New(EOF, "", "main.gl", "x = @;", NewPosition(4, 0, 4), NewPosition(4, 0, 4))
	err := tok.IllegalChar()

	if !errors.Is(err, ErrIllegalCharacter) {
		t.Fatalf("errors.Is(err, ErrIllegalCharacter) = false")
	}
	if errors.Is(err, ErrInvalidSyntax) {
		t.Fatalf("errors.Is(err, ErrInvalidSyntax) = true")
	}
	if err.Detail != "illegal character '@'" {
		t.Fatalf("Detail = %q", err.Detail)
	}
	if err.Code != CodeIllegalCharacter {
		t.Fatalf("Code = %q", err.Code)
	}
}

func TestIllegalCharOutsideLine(t *testing.T) {
	t.Parallel()

	tok := New(EOF, "", "main.gl", "ab", NewPosition(5, 0, 5), NewPosition(5, 0, 5))
	if got := tok.IllegalChar().Detail; got != "illegal character" {
		t.Fatalf("Detail = %q", got)
	}
}

func TestInvalidSyntaxWrapsSentinel(t *testing.T) {
	t.Parallel()

	tok := New(EOF, "", "main.gl", "123abc", NewPosition(3, 4, 3), NewPosition(3, 4, 3))
	var err error = tok.InvalidSyntax("unexpected 'a'")

	if !errors.Is(err, ErrInvalidSyntax) {
		t.Fatalf("errors.Is(err, ErrInvalidSyntax) = false")
	}

	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("errors.As(*Error) = false")
	}
	if span := lexErr.Span(); span != (Span{Line: 5, Column: 4}) {
		t.Fatalf("Span() = %+v", span)
	}
	if got := lexErr.Message(); got != "InvalidSyntax: unexpected 'a'" {
		t.Fatalf("Message() = %q", got)
	}
}
