package editor

import (
	"github.com/dshills/caretstorm/internal/engine/caret"
	"github.com/dshills/caretstorm/internal/engine/linestore"
)

// Interaction-mode state machine for mouse-driven selection. One mode (or
// none) is active at a time; the live selection is held here and only
// merged into the caret set when the gesture ends.
type modeKind uint8

const (
	modeIdle modeKind = iota
	modeSelecting
	modePreDrag
)

type interactionMode struct {
	kind modeKind
	sel  caret.Entry
}

// Selecting returns true while a mouse selection is in progress.
func (s *Surface) Selecting() bool {
	return s.mode.kind == modeSelecting
}

// ActiveSelection returns the in-progress selection entry. Valid only
// while Selecting.
func (s *Surface) ActiveSelection() caret.Entry {
	return s.mode.sel
}

// PreDragging returns true while a press inside a selection waits to be
// resolved as either a drag or a caret placement.
func (s *Surface) PreDragging() bool {
	return s.mode.kind == modePreDrag
}

// BeginSelection starts a mouse selection at p. Unless additive, the
// existing carets are discarded first. Beginning a selection while one is
// already active is a programmer error and panics.
func (s *Surface) BeginSelection(p caret.Position, additive bool) {
	if s.mode.kind != modeIdle {
		panic("editor: interaction already in progress")
	}
	if !additive {
		s.carets.Clear()
	}
	s.mode = interactionMode{
		kind: modeSelecting,
		sel:  caret.NewCaret(p, s.caretX(p)),
	}
}

// DragSelection extends the in-progress selection to p; the anchor (the
// moving end) follows the mouse while the selection end stays put.
func (s *Surface) DragSelection(p caret.Position) {
	if s.mode.kind != modeSelecting {
		return
	}
	if p.Equal(s.mode.sel.Anchor) {
		return
	}
	s.mode.sel.Anchor = p
	s.mode.sel.Baseline = s.caretX(p)
	s.mode.sel.RectCache = nil
}

// BeginPreDrag records a press at p inside an existing selection. The
// gesture is ambiguous until the button is released: a release in place
// means "place the caret here", a drag would mean "move the selected
// text" (dropping is not implemented). Panics if another interaction is
// already active.
func (s *Surface) BeginPreDrag(p caret.Position) {
	if s.mode.kind != modeIdle {
		panic("editor: interaction already in progress")
	}
	s.mode = interactionMode{
		kind: modePreDrag,
		sel:  caret.NewCaret(p, s.caretX(p)),
	}
}

// CancelPreDrag resolves a pre-drag as a plain caret placement at the
// press position, discarding the selections. A no-op when no pre-drag is
// active.
func (s *Surface) CancelPreDrag() {
	if s.mode.kind != modePreDrag {
		return
	}
	e := s.mode.sel
	s.mode = interactionMode{}
	s.carets.Clear()
	s.carets.Add(e)
	s.cachesValid = false
}

// EndSelection commits the in-progress selection into the caret set,
// merging with anything it overlaps. A no-op when no selection is active.
func (s *Surface) EndSelection() {
	if s.mode.kind != modeSelecting {
		return
	}
	e := s.mode.sel
	s.mode = interactionMode{}
	i, merged := s.carets.Add(e)
	if merged {
		s.carets.SetBaseline(i, s.caretX(s.carets.At(i).Anchor))
	}
	s.cachesValid = false
}

// EnsureSelectionCaches lazily rebuilds every entry's caret x cache and
// selection rectangle cache after they were invalidated by a transaction
// or a committed selection.
func (s *Surface) EnsureSelectionCaches() {
	if s.cachesValid {
		return
	}
	for i := 0; i < s.carets.Len(); i++ {
		pos, rects := s.selectionGeometry(s.carets.At(i))
		s.carets.SetCaches(i, pos, rects)
	}
	s.cachesValid = true
}

// selectionGeometry computes the caret x coordinate and the covered
// rectangles of one entry: a partial rectangle on the first and last
// line, full-width rectangles in between. Lines that carry a terminator
// get one extra cell so the selected line break is visible.
func (s *Surface) selectionGeometry(e caret.Entry) (float64, []caret.Rect) {
	h := s.lineHeight
	pos := s.caretX(e.Anchor)
	if e.IsCaret() {
		return pos, nil
	}
	begp, endp := pos, s.caretX(e.SelectionEnd)
	beg, end := e.Anchor, e.SelectionEnd
	if end.Less(beg) {
		beg, end = end, beg
		begp, endp = endp, begp
	}
	y := float64(beg.Line) * h
	if beg.Line == end.Line {
		return pos, []caret.Rect{{Left: begp, Right: endp, Top: y, Bottom: y + h}}
	}
	var rects []caret.Rect
	lh := s.doc.At(beg.Line)
	rects = append(rects, caret.Rect{Left: begp, Right: s.lineExtent(lh.Line()), Top: y, Bottom: y + h})
	for i := beg.Line + 1; i < end.Line; i++ {
		lh = lh.Next()
		y += h
		rects = append(rects, caret.Rect{Left: 0, Right: s.lineExtent(lh.Line()), Top: y, Bottom: y + h})
	}
	y += h
	rects = append(rects, caret.Rect{Left: 0, Right: endp, Top: y, Bottom: y + h})
	return pos, rects
}

func (s *Surface) lineExtent(l *linestore.Line) float64 {
	w := s.meas.RunWidth(l.Text())
	if l.Ending() != linestore.EndingNone {
		w += s.meas.CellWidth()
	}
	return w
}
