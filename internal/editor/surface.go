package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/caretstorm/internal/engine/caret"
	"github.com/dshills/caretstorm/internal/engine/edit"
	"github.com/dshills/caretstorm/internal/engine/linestore"
	"github.com/dshills/caretstorm/internal/engine/measure"
)

// Surface is one editing surface: a document, its caret set, and the
// settings that drive transactions over them.
type Surface struct {
	id       uuid.UUID
	doc      *linestore.Document
	carets   *caret.Set
	meas     measure.Measurer
	notifier *notifier
	guard    edit.Guard

	lineEnding linestore.Ending
	overwrite  bool
	lineHeight float64

	mode        interactionMode
	scrollTo    caret.Position
	cachesValid bool
}

// Option configures a Surface at construction time.
type Option func(*Surface)

// WithMeasurer replaces the default monospace measurer.
func WithMeasurer(m measure.Measurer) Option {
	return func(s *Surface) { s.meas = m }
}

// WithLineEnding sets the terminator for newly inserted lines.
// EndingNone is a programmer error and panics.
func WithLineEnding(e linestore.Ending) Option {
	return func(s *Surface) { s.SetLineEnding(e) }
}

// WithOverwrite starts the surface in overwrite mode.
func WithOverwrite(on bool) Option {
	return func(s *Surface) { s.overwrite = on }
}

// WithLineHeight sets the height of one line in surface coordinates,
// used for selection rectangles. Defaults to 1 (terminal cells).
func WithLineHeight(h float64) Option {
	return func(s *Surface) {
		if h > 0 {
			s.lineHeight = h
		}
	}
}

// New creates a surface owning doc, with a single caret at the document
// start.
func New(doc *linestore.Document, opts ...Option) *Surface {
	s := &Surface{
		id:         uuid.New(),
		doc:        doc,
		carets:     caret.NewSetAt(caret.Position{}),
		meas:       measure.NewMonospace(4),
		notifier:   newNotifier(),
		lineEnding: linestore.EndingLF,
		lineHeight: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the surface's identity.
func (s *Surface) ID() uuid.UUID {
	return s.id
}

// Document returns the owned document.
func (s *Surface) Document() *linestore.Document {
	return s.doc
}

// Carets returns the live caret set for read-only iteration. Mutation
// goes through transactions or the selection mode machine only.
func (s *Surface) Carets() *caret.Set {
	return s.carets
}

// Line returns the line at the given index.
func (s *Surface) Line(i int) *linestore.Line {
	return s.doc.At(i).Line()
}

// LineCount returns the document's line count.
func (s *Surface) LineCount() int {
	return s.doc.LineCount()
}

// IsInSelection returns true if p lies inside a non-empty selection.
func (s *Surface) IsInSelection(p caret.Position) bool {
	return s.carets.IsInSelection(p)
}

// OnModified registers an observer for document mutation.
func (s *Surface) OnModified(fn Observer) *Subscription {
	return s.notifier.subscribe(fn)
}

// LineEnding returns the terminator used for newly inserted lines.
func (s *Surface) LineEnding() linestore.Ending {
	return s.lineEnding
}

// SetLineEnding sets the terminator for newly inserted lines. EndingNone
// is a programmer error and panics.
func (s *Surface) SetLineEnding(e linestore.Ending) {
	if e == linestore.EndingNone {
		panic("editor: EndingNone is not a usable default line ending")
	}
	s.lineEnding = e
}

// AutoDetectLineEnding picks the default terminator by majority vote over
// the document and returns the choice.
func (s *Surface) AutoDetectLineEnding() linestore.Ending {
	s.lineEnding = linestore.DetectLineEnding(s.doc)
	return s.lineEnding
}

// Overwrite returns true when the surface is in overwrite mode.
func (s *Surface) Overwrite() bool {
	return s.overwrite
}

// ToggleOverwrite flips overwrite mode and returns the new state.
func (s *Surface) ToggleOverwrite() bool {
	s.overwrite = !s.overwrite
	return s.overwrite
}

// ScrollTarget returns the caret the view should keep visible, updated by
// every completed transaction.
func (s *Surface) ScrollTarget() caret.Position {
	return s.scrollTo
}

// begin opens a transaction with the surface's settings. A selection
// being dragged is committed first, as every mutation of the caret set
// goes through either the mode machine or a transaction, never both.
func (s *Surface) begin() *edit.Transaction {
	switch s.mode.kind {
	case modeSelecting:
		s.EndSelection()
	case modePreDrag:
		s.CancelPreDrag()
	}
	return edit.Begin(s.doc, s.carets, edit.Config{
		LineEnding: s.lineEnding,
		Overwrite:  s.overwrite,
		Measurer:   s.meas,
		Guard:      &s.guard,
	})
}

func (s *Surface) finish(tx *edit.Transaction) {
	res := tx.End()
	s.scrollTo = res.Last
	s.cachesValid = false
	if res.Modified {
		s.notifier.notify()
	}
}

// forEachCaret drives one transaction, issuing fn once per caret.
func (s *Surface) forEachCaret(fn func(tx *edit.Transaction)) {
	tx := s.begin()
	for !tx.Done() {
		fn(tx)
		tx.Next()
	}
	s.finish(tx)
}

// TypeRune types one character at every caret.
func (s *Surface) TypeRune(r rune) {
	s.forEachCaret(func(tx *edit.Transaction) { tx.InsertRune(r) })
}

// TypeText inserts a string, possibly multi-line, at every caret.
func (s *Surface) TypeText(text string) {
	s.forEachCaret(func(tx *edit.Transaction) { tx.InsertText(text) })
}

// Backspace deletes before every caret.
func (s *Surface) Backspace() {
	s.forEachCaret(func(tx *edit.Transaction) { tx.DeleteBackward() })
}

// Delete deletes after every caret.
func (s *Surface) Delete() {
	s.forEachCaret(func(tx *edit.Transaction) { tx.DeleteForward() })
}

// CollapseAll reduces every selection to a plain caret at its anchor.
func (s *Surface) CollapseAll() {
	s.forEachCaret(func(tx *edit.Transaction) { tx.Collapse() })
}

// caretX returns the x coordinate of a caret at p.
func (s *Surface) caretX(p caret.Position) float64 {
	return s.meas.PrefixWidth(s.doc.At(p.Line).Line().Text(), p.Col)
}

// HitTestColumn maps an x coordinate on the given line to a column.
func (s *Surface) HitTestColumn(line int, x float64) int {
	return s.meas.HitColumn(s.doc.At(line).Line().Text(), x)
}

// HitTest clamps a (line, x) pair into a valid document position.
func (s *Surface) HitTest(line int, x float64) caret.Position {
	if line < 0 {
		line = 0
	}
	if n := s.doc.LineCount(); line >= n {
		line = n - 1
	}
	if x < 0 {
		x = 0
	}
	return caret.Position{Line: line, Col: s.HitTestColumn(line, x)}
}
