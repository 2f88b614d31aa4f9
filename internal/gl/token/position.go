package token

import "fmt"

// Position is a snapshot of the scan cursor.
// Index and Column are rune offsets within the current line; Lineno is 0-based.
type Position struct {
	Index  int
	Lineno int
	Column int
}

// NewPosition creates a position from its components.
func NewPosition(index, lineno, column int) Position {
	return Position{
		Index:  index,
		Lineno: lineno,
		Column: column,
	}
}

// Copy returns an independent copy of the position.
func (p Position) Copy() Position {
	return p
}

// String renders the position as 1-based line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Lineno+1, p.Column+1)
}
