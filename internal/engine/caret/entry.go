package caret

import "fmt"

// Rect is an axis-aligned rectangle in surface coordinates. Selection
// rectangle caches are expressed as a sequence of Rects, one per covered
// line fragment.
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// Entry is a single caret or selection in a Set.
//
// Anchor is the endpoint the caret is drawn at; SelectionEnd is the other
// endpoint of the selection, equal to Anchor for a plain caret. Baseline is
// the cached horizontal coordinate used to keep vertical caret movement
// visually aligned across lines of varying width.
//
// PosCache and RectCache are rendering caches filled lazily by the owning
// surface; they never affect ordering or merging.
type Entry struct {
	Anchor       Position
	SelectionEnd Position
	Baseline     float64

	PosCache  float64
	RectCache []Rect
}

// NewEntry creates an entry with the given endpoints and baseline.
func NewEntry(anchor, end Position, baseline float64) Entry {
	return Entry{Anchor: anchor, SelectionEnd: end, Baseline: baseline}
}

// NewCaret creates a plain caret entry at the given position.
func NewCaret(p Position, baseline float64) Entry {
	return Entry{Anchor: p, SelectionEnd: p, Baseline: baseline}
}

// IsCaret returns true if the entry has no selected text.
func (e Entry) IsCaret() bool {
	return e.Anchor.Equal(e.SelectionEnd)
}

// Range returns the closed interval covered by the entry, in ascending
// order.
func (e Entry) Range() (Position, Position) {
	return MinMax(e.Anchor, e.SelectionEnd)
}

// Forward returns true if the anchor orders at or before the selection end.
func (e Entry) Forward() bool {
	return e.Anchor.LessEq(e.SelectionEnd)
}

// SameSpan returns true if two entries cover the same range, regardless of
// direction.
func (e Entry) SameSpan(other Entry) bool {
	m1, x1 := e.Range()
	m2, x2 := other.Range()
	return m1.Equal(m2) && x1.Equal(x2)
}

// String returns a string representation of the entry.
func (e Entry) String() string {
	if e.IsCaret() {
		return fmt.Sprintf("Caret%v", e.Anchor)
	}
	return fmt.Sprintf("Selection(%v..%v)", e.Anchor, e.SelectionEnd)
}
