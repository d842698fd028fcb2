package caret

import "fmt"

// Position is a (line, column) location in a document.
// Positions are ordered by line first, then column.
type Position struct {
	Line int
	Col  int
}

// Less returns true if p orders strictly before q.
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// LessEq returns true if p orders before or equal to q.
func (p Position) LessEq(q Position) bool {
	return !q.Less(p)
}

// Equal returns true if p and q are the same position.
func (p Position) Equal(q Position) bool {
	return p.Line == q.Line && p.Col == q.Col
}

// Cmp returns -1 if p < q, 0 if p == q, 1 if p > q.
func (p Position) Cmp(q Position) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	default:
		return 0
	}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Col)
}

// MinMax returns the two positions in ascending order.
func MinMax(a, b Position) (Position, Position) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}
