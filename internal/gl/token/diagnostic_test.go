package token

import "testing"

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		lineno int
		column int
		detail string
		want   string
	}{
		{
			name:   "plain line",
			line:   "x = 123abc;",
			column: 7,
			detail: "InvalidSyntax: unexpected 'a'",
			want: "  File \"main.gl\", line 1\n" +
				"    x = 123abc;\n" +
				"           ^\n" +
				"InvalidSyntax: unexpected 'a'",
		},
		{
			name:   "leading tabs are trimmed and shift the caret",
			line:   "\t\tfoo(@);",
			lineno: 2,
			column: 6,
			detail: "IllegalCharacter",
			want: "  File \"main.gl\", line 3\n" +
				"    foo(@);\n" +
				"        ^\n" +
				"IllegalCharacter",
		},
		{
			name:   "trailing carriage return and spaces removed",
			line:   "  abc  \r\n",
			column: 2,
			want: "  File \"main.gl\", line 1\n" +
				"    abc\n" +
				"    ^\n",
		},
		{
			name:   "caret clamps at zero",
			line:   "    abc",
			column: 1,
			detail: "x",
			want: "  File \"main.gl\", line 1\n" +
				"    abc\n" +
				"    ^\n" +
				"x",
		},
		{
			name:   "empty line",
			line:   "",
			column: 0,
			want: "  File \"main.gl\", line 1\n" +
				"    \n" +
				"    ^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pos := NewPosition(tt.column, tt.lineno, tt.column)
			tok := New(EOF, "", "main.gl", tt.line, pos, pos)

			if got := Render(tok, tt.detail); got != tt.want {
				t.Fatalf("Render() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestErrorRendersDiagnostic(t *testing.T) {
	t.Parallel()

	pos := NewPosition(1, 0, 1)
	tok := New(EOF, "", "f.gl", "a$", pos, pos)

	want := "  File \"f.gl\", line 1\n" +
		"    a$\n" +
		"     ^\n" +
		"IllegalCharacter: illegal character '$'"
	if got := tok.IllegalChar().Error(); got != want {
		t.Fatalf("Error() =\n%s\nwant\n%s", got, want)
	}
}
