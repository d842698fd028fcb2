package edit

import (
	"github.com/dshills/caretstorm/internal/engine/caret"
	"github.com/dshills/caretstorm/internal/engine/linestore"
	"github.com/dshills/caretstorm/internal/engine/measure"
)

// Guard rejects overlapping transactions on one editing surface. The zero
// value is ready to use.
type Guard struct {
	open bool
}

func (g *Guard) enter() {
	if g.open {
		panic("edit: transaction already open on this surface")
	}
	g.open = true
}

func (g *Guard) leave() {
	g.open = false
}

// Config carries the per-surface settings a transaction needs.
type Config struct {
	// LineEnding is the terminator given to lines created by newline
	// insertion. Defaults to LF; EndingNone is not a valid choice.
	LineEnding linestore.Ending

	// Overwrite makes character insertion replace the rune under a plain
	// caret instead of inserting, except at end of line.
	Overwrite bool

	// Measurer recomputes caret baselines after edits. May be nil, in
	// which case baselines are left at zero.
	Measurer measure.Measurer

	// Guard, when set, enforces the one-open-transaction rule.
	Guard *Guard
}

// Result summarizes a completed transaction.
type Result struct {
	// Modified is true if any command actually mutated text.
	Modified bool

	// Last is the anchor of the highest-positioned output caret, the one
	// the view should scroll into visibility. Zero if the set is empty.
	Last caret.Position
}

// Transaction walks the caret set applying one command per caret. See the
// package documentation for the protocol.
type Transaction struct {
	doc  *linestore.Document
	set  *caret.Set
	out  *caret.Set
	cfg  Config
	meas measure.Measurer

	entries []caret.Entry
	idx     int

	// Current caret state. smin/smax are the span in ascending order;
	// minIsAnchor records which of them is the entry's anchor.
	smin, smax  caret.Position
	minIsAnchor bool
	baseline    float64
	handle      linestore.Handle

	// Running deltas applied to not-yet-visited carets. dcol is valid
	// only for carets landing on deltaLine after line adjustment.
	dcol, dline int
	deltaLine   int

	modified bool
	done     bool
	ended    bool
}

// Begin opens a transaction over the given document and caret set and
// positions it on the first caret. Panics if the config's guard already
// has an open transaction.
func Begin(doc *linestore.Document, set *caret.Set, cfg Config) *Transaction {
	if doc == nil || set == nil {
		panic("edit: transaction needs a document and a caret set")
	}
	if cfg.Guard != nil {
		cfg.Guard.enter()
	}
	if cfg.LineEnding == linestore.EndingNone {
		cfg.LineEnding = linestore.EndingLF
	}
	t := &Transaction{
		doc:     doc,
		set:     set,
		out:     caret.NewSet(),
		cfg:     cfg,
		meas:    cfg.Measurer,
		entries: set.All(),
		handle:  doc.Begin(),
	}
	if len(t.entries) == 0 {
		t.done = true
		return t
	}
	e := t.entries[0]
	t.switchTo(e.Anchor, e.SelectionEnd, e.Baseline)
	return t
}

// Done returns true once every caret has been visited.
func (t *Transaction) Done() bool {
	return t.done
}

// Next records the current caret's resulting position pair in the output
// set and advances to the next caret, applying the accumulated deltas to
// its stored positions.
func (t *Transaction) Next() {
	t.mustCurrent()
	t.appendCurrent()
	t.idx++
	if t.idx < len(t.entries) {
		e := t.entries[t.idx]
		t.switchTo(t.fixup(e.Anchor), t.fixup(e.SelectionEnd), e.Baseline)
		return
	}
	t.done = true
}

// End completes the transaction: the output set replaces the live set,
// all selection rectangle caches are invalidated, and the summary is
// returned. Panics if carets remain unvisited.
func (t *Transaction) End() Result {
	if !t.done {
		panic("edit: End called before every caret was visited")
	}
	if t.ended {
		panic("edit: End called twice")
	}
	t.ended = true
	if t.cfg.Guard != nil {
		t.cfg.Guard.leave()
	}
	t.set.ReplaceAll(t.out.All())
	t.set.InvalidateCaches()
	res := Result{Modified: t.modified}
	if t.set.Len() > 0 {
		res.Last = t.set.Last().Anchor
	}
	return res
}

// Position returns the current caret's (anchor, selection end) pair.
func (t *Transaction) Position() (anchor, selEnd caret.Position) {
	t.mustCurrent()
	if t.minIsAnchor {
		return t.smin, t.smax
	}
	return t.smax, t.smin
}

// Baseline returns the current caret's baseline.
func (t *Transaction) Baseline() float64 {
	return t.baseline
}

func (t *Transaction) mustCurrent() {
	if t.done || t.ended {
		panic("edit: no caret is being visited")
	}
}

// fixup applies the accumulated deltas to a stored position: the line
// delta always, the column delta only if the adjusted line is the one the
// column delta is valid for.
func (t *Transaction) fixup(p caret.Position) caret.Position {
	p.Line += t.dline
	if p.Line == t.deltaLine {
		p.Col += t.dcol
	}
	return p
}

func (t *Transaction) switchTo(anchor, selEnd caret.Position, baseline float64) {
	t.smin = anchor
	t.smax = selEnd
	t.baseline = baseline
	t.onSpanChanged()
}

// onSpanChanged re-derives span order and, when the span moved to another
// line, resets the column delta and re-resolves the line handle.
func (t *Transaction) onSpanChanged() {
	if t.smax.Less(t.smin) {
		t.minIsAnchor = false
		t.smin, t.smax = t.smax, t.smin
	} else {
		t.minIsAnchor = true
	}
	if t.deltaLine != t.smin.Line {
		t.dcol = 0
		t.deltaLine = t.smin.Line
		t.handle = t.doc.At(t.smin.Line)
	}
}

func (t *Transaction) appendCurrent() {
	anchor, selEnd := t.smin, t.smax
	if !t.minIsAnchor {
		anchor, selEnd = selEnd, anchor
	}
	i, merged := t.out.Add(caret.NewEntry(anchor, selEnd, t.baseline))
	if merged {
		t.out.SetBaseline(i, t.measurePos(t.out.At(i).Anchor))
	}
}

func (t *Transaction) measurePos(p caret.Position) float64 {
	if t.meas == nil {
		return 0
	}
	return t.meas.PrefixWidth(t.doc.At(p.Line).Line().Text(), p.Col)
}

func (t *Transaction) measureCol(ln *linestore.Line, col int) float64 {
	if t.meas == nil {
		return 0
	}
	return t.meas.PrefixWidth(ln.Text(), col)
}

func (t *Transaction) checkPos(p caret.Position) {
	if p.Line < 0 || p.Line >= t.doc.LineCount() {
		panic("edit: position outside document: " + p.String())
	}
	if p.Col < 0 || p.Col > t.doc.At(p.Line).Line().Len() {
		panic("edit: position outside line: " + p.String())
	}
}
