// Package charclass holds the read-only character classes used by the scanner.
package charclass

import "unicode/utf8"

const (
	Digits        = "0123456789"
	Letters       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	LettersDigits = Letters + Digits
	// Punctuations lists every punctuation character. Only ; ( ) , { } produce
	// tokens; the scanner skips or rejects the rest.
	Punctuations = ";(),{}[].:=+-*/<>!&|%"
	Spaces       = " \t\n\r"
	Quote        = '"'
)

type class uint8

const (
	classDigit class = 1 << iota
	classLetter
	classPunctuation
	classSpace
)

var table = build()

func build() [utf8.RuneSelf]class {
	var t [utf8.RuneSelf]class
	mark := func(chars string, c class) {
		for i := 0; i < len(chars); i++ {
			t[chars[i]] |= c
		}
	}

	mark(Digits, classDigit)
	mark(Letters, classLetter)
	mark(Punctuations, classPunctuation)
	mark(Spaces, classSpace)
	return t
}

func is(r rune, c class) bool {
	if r < 0 || r >= utf8.RuneSelf {
		return false
	}
	return table[r]&c != 0
}

func IsDigit(r rune) bool { return is(r, classDigit) }

func IsLetter(r rune) bool { return is(r, classLetter) }

func IsLetterOrDigit(r rune) bool { return is(r, classLetter|classDigit) }

func IsPunctuation(r rune) bool { return is(r, classPunctuation) }

func IsSpace(r rune) bool { return is(r, classSpace) }

// IsTokenStart reports whether r can begin some token class. It only decides
// which lexical error to raise, never whether input is accepted.
func IsTokenStart(r rune) bool {
	return r == Quote || is(r, classDigit|classLetter|classPunctuation)
}
