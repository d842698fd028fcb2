// Package edit implements the multi-caret edit transaction.
//
// A Transaction visits every caret of a Set in ascending order and applies
// one edit or move command per caret to the line store at that caret's
// location. Because earlier carets structurally change the document,
// the transaction carries a running line delta and a running column delta
// (valid for one tracked line at a time) and applies them to each caret's
// recorded positions before visiting it; this delta fix-up reproduces
// simultaneous-edit semantics rather than a left-to-right cascade.
//
// The resulting position pair of each visited caret is merge-inserted into
// a fresh output set, which replaces the live set when the transaction
// ends. Ending the transaction also invalidates every selection rectangle
// cache and reports whether any command actually mutated text, so the
// owning surface can emit a single "document modified" notification.
//
// Usage:
//
//	tx := edit.Begin(doc, carets, cfg)
//	for !tx.Done() {
//		tx.InsertRune('x')
//		tx.Next()
//	}
//	res := tx.End()
//
// Exactly one command is issued per visited caret. Transactions are not
// reentrant: beginning a second transaction while one is open on the same
// guard is a programmer error and panics. Expected edge conditions
// (backspace at the document start, forward delete at the document end)
// are silent no-ops and do not count as mutations.
package edit
