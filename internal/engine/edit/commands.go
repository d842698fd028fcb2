package edit

import (
	"github.com/dshills/caretstorm/internal/engine/caret"
	"github.com/dshills/caretstorm/internal/engine/linestore"
)

// InsertRune types one character at the current caret. A non-empty span
// is deleted first. In overwrite mode a plain caret that is not at end of
// line replaces the rune under it instead of inserting. Newlines are
// routed to InsertNewline.
func (t *Transaction) InsertRune(r rune) {
	t.mustCurrent()
	if r == '\n' {
		t.InsertNewline()
		return
	}
	had := !t.smin.Equal(t.smax)
	if had {
		t.deleteSpan()
	}
	ln := t.handle.Line()
	if !t.cfg.Overwrite || had || t.smin.Col == ln.Len() {
		ln.Insert(t.smin.Col, string(r))
		t.dcol++
	} else {
		ln.Overwrite(t.smin.Col, r)
	}
	t.smin.Col++
	t.smax = t.smin
	t.baseline = t.measureCol(ln, t.smin.Col)
	t.modified = true
}

// InsertNewline splits the current line at the caret. The first half
// keeps the content before the caret and takes the configured line
// ending; the second half receives the remainder and the original
// ending. Any carets still recorded on the original line past this
// point have in fact moved to the successor line, so the column delta
// is rebased by the split column.
func (t *Transaction) InsertNewline() {
	t.mustCurrent()
	if !t.smin.Equal(t.smax) {
		t.deleteSpan()
	}
	ln := t.handle.Line()
	rest := ln.Cut(t.smin.Col)
	oldEnding := ln.Ending()
	ln.SetEnding(t.cfg.LineEnding)
	t.handle = t.doc.InsertAfter(t.handle, linestore.NewLine(rest, oldEnding))
	t.dline++
	t.deltaLine++
	t.dcol -= t.smin.Col
	t.smin = caret.Position{Line: t.smin.Line + 1}
	t.smax = t.smin
	t.baseline = t.measureCol(t.handle.Line(), 0)
	t.modified = true
}

// InsertText types a string, possibly spanning several lines, at the
// current caret. A non-empty span is deleted first. The caret ends up
// after the inserted text.
func (t *Transaction) InsertText(s string) {
	t.mustCurrent()
	if !t.smin.Equal(t.smax) {
		t.deleteSpan()
	}
	ln := t.handle.Line()
	rest := ln.Cut(t.smin.Col)
	oldEnding := ln.Ending()
	first := true
	linestore.ScanLines(s, func(content string, ending linestore.Ending) {
		if first {
			ln.Append(content)
			ln.SetEnding(ending)
			first = false
			return
		}
		t.handle = t.doc.InsertAfter(t.handle, linestore.NewLine(content, ending))
		t.dline++
		t.deltaLine++
	})
	last := t.handle.Line()
	t.dcol += last.Len() - t.smin.Col
	t.smax = caret.Position{Line: t.deltaLine, Col: last.Len()}
	last.Append(rest)
	last.SetEnding(oldEnding)
	t.smin = t.smax
	t.baseline = t.measureCol(last, t.smax.Col)
	t.modified = true
}

// DeleteBackward deletes the span if one exists; otherwise it deletes the
// character before the caret, merging the current line into its
// predecessor when the caret sits at column 0. At the very start of the
// document it is a no-op.
func (t *Transaction) DeleteBackward() {
	t.mustCurrent()
	if !t.smin.Equal(t.smax) {
		t.deleteSpan()
		t.modified = true
		return
	}
	if t.smin.Equal(caret.Position{}) {
		return
	}
	if t.smin.Col == 0 {
		t.handle = t.handle.Prev()
		t.deltaLine--
		t.smin = caret.Position{Line: t.smin.Line - 1, Col: t.handle.Line().Len()}
	} else {
		t.smin.Col--
	}
	t.deleteSpan()
	t.modified = true
}

// DeleteForward deletes the span if one exists; otherwise it deletes the
// character at the caret, merging the following line into the current one
// when the caret sits at end of line. At the very end of the document it
// is a no-op.
func (t *Transaction) DeleteForward() {
	t.mustCurrent()
	if !t.smin.Equal(t.smax) {
		t.deleteSpan()
		t.modified = true
		return
	}
	ln := t.handle.Line()
	switch {
	case t.smin.Col < ln.Len():
		t.smax.Col++
	case t.smin.Line+1 < t.doc.LineCount():
		t.smax = caret.Position{Line: t.smax.Line + 1}
	default:
		return
	}
	t.deleteSpan()
	t.modified = true
}

// deleteSpan removes the spanned text and collapses the caret to the span
// start. A single-line span is spliced out of its line. A multi-line span
// erases every fully enclosed line, then joins the remainder of the first
// line with the remainder of the last, adopting the last line's ending.
func (t *Transaction) deleteSpan() {
	ln := t.handle.Line()
	if t.smin.Line == t.smax.Line {
		ln.Delete(t.smin.Col, t.smax.Col)
		t.dcol += t.smin.Col - t.smax.Col
	} else {
		t.dline -= t.smax.Line - t.smin.Line
		t.dcol = t.smin.Col - t.smax.Col
		for t.smin.Line+1 < t.smax.Line {
			t.doc.Erase(t.handle.Next())
			t.smax.Line--
		}
		next := t.handle.Next()
		nl := next.Line()
		ln.Cut(t.smin.Col)
		ln.Append(nl.TextFrom(t.smax.Col))
		ln.SetEnding(nl.Ending())
		t.doc.Erase(next)
	}
	t.smax = t.smin
	t.baseline = t.measureCol(ln, t.smin.Col)
}

// MoveTo collapses the current caret to p with the given baseline. No
// document mutation takes place. An out-of-range position is a programmer
// error and panics.
func (t *Transaction) MoveTo(p caret.Position, baseline float64) {
	t.mustCurrent()
	t.checkPos(p)
	t.smin, t.smax = p, p
	t.baseline = baseline
}

// MoveToWithSelection moves the current caret's anchor to p, keeping the
// selection end fixed, extending or shrinking the selection.
func (t *Transaction) MoveToWithSelection(p caret.Position, baseline float64) {
	t.mustCurrent()
	t.checkPos(p)
	if t.minIsAnchor {
		t.smin = p
	} else {
		t.smax = p
	}
	if t.smax.Less(t.smin) {
		t.smin, t.smax = t.smax, t.smin
		t.minIsAnchor = !t.minIsAnchor
	}
	t.baseline = baseline
}

// Collapse reduces the current caret to a plain caret at its anchor,
// keeping the baseline.
func (t *Transaction) Collapse() {
	anchor, _ := t.Position()
	t.MoveTo(anchor, t.baseline)
}
