package editor

import (
	"math"

	"github.com/dshills/caretstorm/internal/engine/caret"
	"github.com/dshills/caretstorm/internal/engine/edit"
)

// leftOf returns the position one step left of p, crossing to the end of
// the previous line at column 0, saturating at the document start.
func (s *Surface) leftOf(p caret.Position) (caret.Position, float64) {
	h := s.doc.At(p.Line)
	if p.Col == 0 {
		if p.Line > 0 {
			h = h.Prev()
			p.Line--
			p.Col = h.Line().Len()
		}
	} else {
		p.Col--
	}
	return p, s.meas.PrefixWidth(h.Line().Text(), p.Col)
}

// rightOf returns the position one step right of p, crossing to the start
// of the next line at end of line, saturating at the document end.
func (s *Surface) rightOf(p caret.Position) (caret.Position, float64) {
	h := s.doc.At(p.Line)
	if p.Col == h.Line().Len() {
		if p.Line+1 < s.doc.LineCount() {
			h = h.Next()
			p.Line++
			p.Col = 0
		}
	} else {
		p.Col++
	}
	return p, s.meas.PrefixWidth(h.Line().Text(), p.Col)
}

// upFrom returns the position one line above p, choosing the column by
// hit-testing the baseline. Saturates at the first line.
func (s *Surface) upFrom(p caret.Position, baseline float64) caret.Position {
	if p.Line == 0 {
		return p
	}
	p.Line--
	p.Col = s.HitTestColumn(p.Line, baseline)
	return p
}

// downFrom returns the position one line below p, choosing the column by
// hit-testing the baseline. Saturates at the last line.
func (s *Surface) downFrom(p caret.Position, baseline float64) caret.Position {
	if p.Line+1 == s.doc.LineCount() {
		return p
	}
	p.Line++
	p.Col = s.HitTestColumn(p.Line, baseline)
	return p
}

// moveHorizontal applies step to every caret. Without extension a caret
// that has a selection collapses to the span endpoint picked by collapse
// instead of moving.
func (s *Surface) moveHorizontal(
	step func(caret.Position) (caret.Position, float64),
	collapse func(a, b caret.Position) caret.Position,
	extend bool,
) {
	s.forEachCaret(func(tx *edit.Transaction) {
		anchor, selEnd := tx.Position()
		if extend {
			np, bl := step(anchor)
			tx.MoveToWithSelection(np, bl)
			return
		}
		if anchor.Equal(selEnd) {
			np, bl := step(anchor)
			tx.MoveTo(np, bl)
			return
		}
		np := collapse(anchor, selEnd)
		tx.MoveTo(np, s.caretX(np))
	})
}

// MoveLeft moves every caret one step left; a selection without
// extension collapses to its lower end.
func (s *Surface) MoveLeft(extend bool) {
	s.moveHorizontal(s.leftOf, func(a, b caret.Position) caret.Position {
		m, _ := caret.MinMax(a, b)
		return m
	}, extend)
}

// MoveRight moves every caret one step right; a selection without
// extension collapses to its upper end.
func (s *Surface) MoveRight(extend bool) {
	s.moveHorizontal(s.rightOf, func(a, b caret.Position) caret.Position {
		_, x := caret.MinMax(a, b)
		return x
	}, extend)
}

// moveVertical applies up/down movement. Without extension a selection
// first collapses to the endpoint nearest the movement direction, then
// moves; the baseline is kept so repeated vertical movement stays
// visually aligned.
func (s *Surface) moveVertical(up, extend bool) {
	step := s.downFrom
	if up {
		step = s.upFrom
	}
	s.forEachCaret(func(tx *edit.Transaction) {
		bl := tx.Baseline()
		anchor, selEnd := tx.Position()
		if extend {
			tx.MoveToWithSelection(step(anchor, bl), bl)
			return
		}
		from := anchor
		other := up && selEnd.Less(anchor) || !up && anchor.Less(selEnd)
		if other {
			from = selEnd
			bl = s.caretX(from)
		}
		tx.MoveTo(step(from, bl), bl)
	})
}

// MoveUp moves every caret one line up, keeping baselines.
func (s *Surface) MoveUp(extend bool) {
	s.moveVertical(true, extend)
}

// MoveDown moves every caret one line down, keeping baselines.
func (s *Surface) MoveDown(extend bool) {
	s.moveVertical(false, extend)
}

// MoveHome moves every caret to the first non-blank column of its line,
// or to column 0 if it is already there.
func (s *Surface) MoveHome(extend bool) {
	s.forEachCaret(func(tx *edit.Transaction) {
		anchor, _ := tx.Position()
		text := s.doc.At(anchor.Line).Line().Text()
		i := 0
		for _, r := range text {
			if r != ' ' && r != '\t' {
				break
			}
			i++
		}
		cp := anchor
		var bl float64
		if cp.Col == i {
			cp.Col = 0
		} else {
			cp.Col = i
			bl = s.meas.PrefixWidth(text, i)
		}
		if extend {
			tx.MoveToWithSelection(cp, bl)
		} else {
			tx.MoveTo(cp, bl)
		}
	})
}

// MoveEnd moves every caret to the end of its line. The baseline is set
// to infinity so vertical movement from here sticks to line ends.
func (s *Surface) MoveEnd(extend bool) {
	s.forEachCaret(func(tx *edit.Transaction) {
		anchor, _ := tx.Position()
		cp := anchor
		cp.Col = s.doc.At(anchor.Line).Line().Len()
		bl := math.Inf(1)
		if extend {
			tx.MoveToWithSelection(cp, bl)
		} else {
			tx.MoveTo(cp, bl)
		}
	})
}
