// Package caret provides caret and selection management for text editing.
//
// The caret package handles:
//
//   - Caret positioning with the Position type, a totally ordered
//     (line, column) pair
//   - Carets and selections via the Entry type, an (anchor, selection end)
//     pair plus cached rendering data
//   - Multi-caret support with Set
//
// Selection Model:
//
// An Entry records the two endpoints of a selection. Anchor is the position
// where the caret is drawn and where typing occurs; SelectionEnd is the
// other endpoint. When Anchor == SelectionEnd the entry represents a plain
// caret with no selected text. The pair is deliberately unordered: a
// selection may extend forward or backward, and the direction is preserved.
// The range of an entry is always the closed interval
// [min(anchor, end), max(anchor, end)].
//
// Multi-Caret Support:
//
// Set keeps entries ordered by anchor and guarantees that no two entries
// have intersecting ranges. Adding an entry merges it with every existing
// entry whose range overlaps or touches it; a plain caret landing inside an
// existing selection is absorbed without altering that selection.
//
// Thread Safety:
//
// Position and Entry are value types. Set is not safe for concurrent use;
// a set is owned by exactly one editing surface and is only ever touched
// from the surface's own event loop.
package caret
