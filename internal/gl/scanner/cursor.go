package scanner

import "strings"

// advanceChar consumes the next rune, or returns eof when input is exhausted.
func (s *Scanner) advanceChar() rune {
	if s.offset >= len(s.source) {
		return eof
	}

	r := s.source[s.offset]
	s.offset++
	return r
}

func (s *Scanner) advancePosition() {
	s.position.Index++
	s.position.Column++
}

// advanceLinetext moves the cursor to the start of the next line.
func (s *Scanner) advanceLinetext() {
	s.position.Lineno++
	s.position.Index = 0
	s.position.Column = 0

	if s.nextLine < len(s.lines) {
		s.lineText = s.lines[s.nextLine]
		s.nextLine++
	} else {
		s.lineText = ""
	}
}

// lineAt returns the stored text of an absolute line number, or the current
// line text when the line lies past the stored ones.
func (s *Scanner) lineAt(lineno int) string {
	i := lineno - s.startLine
	if i >= 0 && i < len(s.lines) {
		return s.lines[i]
	}
	return s.lineText
}

// advance is a same-line step.
func (s *Scanner) advance() {
	s.advancePosition()
	s.current = s.advanceChar()
}

// step consumes the current rune, crossing into the next line on newline.
func (s *Scanner) step() {
	if s.current == '\n' {
		s.advanceLinetext()
		s.current = s.advanceChar()
		return
	}
	s.advance()
}

// splitLines splits source into lines without their terminators. A trailing
// newline does not start an extra line.
func splitLines(source string) []string {
	if source == "" {
		return nil
	}

	lines := strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
