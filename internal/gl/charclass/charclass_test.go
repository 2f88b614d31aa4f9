package charclass

import "testing"

func TestClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r          rune
		digit      bool
		letter     bool
		punct      bool
		space      bool
		tokenStart bool
	}{
		{r: '0', digit: true, tokenStart: true},
		{r: '9', digit: true, tokenStart: true},
		{r: 'a', letter: true, tokenStart: true},
		{r: 'Z', letter: true, tokenStart: true},
		{r: '_', letter: true, tokenStart: true},
		{r: ';', punct: true, tokenStart: true},
		{r: '{', punct: true, tokenStart: true},
		{r: '+', punct: true, tokenStart: true},
		{r: ' ', space: true},
		{r: '\t', space: true},
		{r: '\n', space: true},
		{r: '\r', space: true},
		{r: '"', tokenStart: true},
		{r: '@'},
		{r: '\\'},
		{r: 'é'},
		{r: -1},
	}

	for _, tt := range tests {
		if got := IsDigit(tt.r); got != tt.digit {
			t.Errorf("IsDigit(%q) = %v, want %v", tt.r, got, tt.digit)
		}
		if got := IsLetter(tt.r); got != tt.letter {
			t.Errorf("IsLetter(%q) = %v, want %v", tt.r, got, tt.letter)
		}
		if got := IsLetterOrDigit(tt.r); got != (tt.letter || tt.digit) {
			t.Errorf("IsLetterOrDigit(%q) = %v", tt.r, got)
		}
		if got := IsPunctuation(tt.r); got != tt.punct {
			t.Errorf("IsPunctuation(%q) = %v, want %v", tt.r, got, tt.punct)
		}
		if got := IsSpace(tt.r); got != tt.space {
			t.Errorf("IsSpace(%q) = %v, want %v", tt.r, got, tt.space)
		}
		if got := IsTokenStart(tt.r); got != tt.tokenStart {
			t.Errorf("IsTokenStart(%q) = %v, want %v", tt.r, got, tt.tokenStart)
		}
	}
}

func TestLettersDigitsIsUnion(t *testing.T) {
	t.Parallel()

	if len(LettersDigits) != len(Letters)+len(Digits) {
		t.Fatalf("len(LettersDigits) = %d", len(LettersDigits))
	}
	for _, r := range LettersDigits {
		if !IsLetterOrDigit(r) {
			t.Fatalf("IsLetterOrDigit(%q) = false", r)
		}
	}
}
