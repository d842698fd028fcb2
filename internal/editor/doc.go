// Package editor ties a document, its caret set and the per-surface
// settings together into an editing surface.
//
// A Surface owns exactly one Document and one caret Set and is the only
// place that opens edit transactions over them; the transaction guard
// lives here. The surface also hosts everything the engine's consumers
// need around the core:
//
//   - Typing and deletion entry points that drive one transaction over
//     every caret (TypeRune, TypeText, Backspace, Delete)
//   - Movement target computation for left/right/up/down/home/end, with
//     or without selection extension, including the baseline bookkeeping
//     that keeps vertical movement visually aligned
//   - Mouse-driven selection as a small mode state machine (idle or
//     selecting), merged into the caret set when it ends
//   - Lazily rebuilt selection rectangle caches for the renderer
//   - A "document modified" notification with no payload, for consumers
//     that cache derived state
//
// Surfaces are explicit values: every collaborator (measurer, settings)
// is passed in, and nothing here is a singleton. A surface and everything
// it owns belong to a single goroutine; no locking is done or needed.
package editor
