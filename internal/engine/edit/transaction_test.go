package edit

import (
	"testing"

	"github.com/dshills/caretstorm/internal/engine/caret"
	"github.com/dshills/caretstorm/internal/engine/linestore"
)

func pos(line, col int) caret.Position {
	return caret.Position{Line: line, Col: col}
}

func setOf(entries ...caret.Entry) *caret.Set {
	s := caret.NewSet()
	for _, e := range entries {
		s.Add(e)
	}
	return s
}

// apply runs one command at every caret and completes the transaction.
func apply(doc *linestore.Document, set *caret.Set, cfg Config, cmd func(*Transaction)) Result {
	tx := Begin(doc, set, cfg)
	for !tx.Done() {
		cmd(tx)
		tx.Next()
	}
	return tx.End()
}

func anchors(s *caret.Set) []caret.Position {
	out := make([]caret.Position, 0, s.Len())
	s.ForEach(func(_ int, e caret.Entry) {
		out = append(out, e.Anchor)
	})
	return out
}

func expectAnchors(t *testing.T, s *caret.Set, want ...caret.Position) {
	t.Helper()
	got := anchors(s)
	if len(got) != len(want) {
		t.Fatalf("expected %d carets, got %v", len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("caret %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestInsertRuneTwoCaretsSameLine(t *testing.T) {
	doc := linestore.FromText("hello")
	set := setOf(caret.NewCaret(pos(0, 2), 0), caret.NewCaret(pos(0, 4), 0))

	res := apply(doc, set, Config{}, func(tx *Transaction) { tx.InsertRune('Z') })

	if doc.Text() != "heZllZo" {
		t.Errorf("expected heZllZo, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(0, 3), pos(0, 6))
	if !res.Modified {
		t.Error("expected Modified")
	}
	if !res.Last.Equal(pos(0, 6)) {
		t.Errorf("expected Last (0,6), got %v", res.Last)
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	doc := linestore.FromText("abcdef\ntail")
	set := setOf(caret.NewCaret(pos(0, 3), 0))

	apply(doc, set, Config{LineEnding: linestore.EndingCRLF}, func(tx *Transaction) {
		tx.InsertNewline()
	})

	if doc.Text() != "abc\r\ndef\ntail" {
		t.Errorf("expected configured ending on the first half, got %q", doc.Text())
	}
	if doc.At(1).Line().Ending() != linestore.EndingLF {
		t.Error("expected the second half to keep the original ending")
	}
	expectAnchors(t, set, pos(1, 0))
}

func TestInsertNewlineTwoCaretsSameLine(t *testing.T) {
	doc := linestore.FromText("abcd")
	set := setOf(caret.NewCaret(pos(0, 1), 0), caret.NewCaret(pos(0, 3), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.InsertRune('\n') })

	if doc.Text() != "a\nbc\nd" {
		t.Errorf("expected a/bc/d, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(1, 0), pos(2, 0))
}

func TestInsertTextMultiLine(t *testing.T) {
	doc := linestore.FromText("ab")
	set := setOf(caret.NewCaret(pos(0, 1), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.InsertText("X\nY") })

	if doc.Text() != "aX\nYb" {
		t.Errorf("expected aX/Yb, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(1, 1))
}

func TestInsertTextSingleLineShiftsLaterCaret(t *testing.T) {
	doc := linestore.FromText("abcd")
	set := setOf(caret.NewCaret(pos(0, 1), 0), caret.NewCaret(pos(0, 3), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.InsertText("..") })

	if doc.Text() != "a..bc..d" {
		t.Errorf("expected a..bc..d, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(0, 3), pos(0, 7))
}

func TestDeleteSpanMultiLine(t *testing.T) {
	doc := linestore.FromText("one\ntwo\nthree")
	set := setOf(caret.NewEntry(pos(0, 2), pos(2, 3), 0))

	res := apply(doc, set, Config{}, func(tx *Transaction) { tx.DeleteForward() })

	if doc.Text() != "onee" {
		t.Errorf("expected onee, got %q", doc.Text())
	}
	if doc.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", doc.LineCount())
	}
	expectAnchors(t, set, pos(0, 2))
	if !res.Modified {
		t.Error("expected Modified")
	}
}

func TestDeleteSpanCollapsesToOneLine(t *testing.T) {
	doc := linestore.FromText("fo\nbar\nz")
	set := setOf(caret.NewEntry(pos(0, 1), pos(2, 0), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.DeleteBackward() })

	if doc.Text() != "fz" {
		t.Errorf("expected fz, got %q", doc.Text())
	}
	if doc.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", doc.LineCount())
	}
	expectAnchors(t, set, pos(0, 1))
}

func TestDeleteSpanAdoptsLastLineEnding(t *testing.T) {
	doc := linestore.FromText("one\r\ntwo\nrest")
	set := setOf(caret.NewEntry(pos(0, 1), pos(1, 1), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.DeleteBackward() })

	if doc.Text() != "owo\nrest" {
		t.Errorf("expected owo/rest, got %q", doc.Text())
	}
	if doc.At(0).Line().Ending() != linestore.EndingLF {
		t.Error("expected the joined line to take the second line's ending")
	}
}

func TestBackspaceAtDocumentStartIsNoOp(t *testing.T) {
	doc := linestore.FromText("abc")
	set := setOf(caret.NewCaret(pos(0, 0), 0))

	res := apply(doc, set, Config{}, func(tx *Transaction) { tx.DeleteBackward() })

	if doc.Text() != "abc" {
		t.Errorf("expected document unchanged, got %q", doc.Text())
	}
	if res.Modified {
		t.Error("expected Modified false for a no-op")
	}
	expectAnchors(t, set, pos(0, 0))
}

func TestBackspaceAtColumnZeroJoinsLines(t *testing.T) {
	doc := linestore.FromText("ab\ncd")
	set := setOf(caret.NewCaret(pos(1, 0), 0), caret.NewCaret(pos(1, 2), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.DeleteBackward() })

	if doc.Text() != "abcd" {
		t.Errorf("expected abcd, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(0, 2), pos(0, 4))
}

func TestDeleteForwardAtEndOfLineJoins(t *testing.T) {
	doc := linestore.FromText("ab\ncd")
	set := setOf(caret.NewCaret(pos(0, 2), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.DeleteForward() })

	if doc.Text() != "abcd" {
		t.Errorf("expected abcd, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(0, 2))
}

func TestDeleteForwardAtDocumentEndIsNoOp(t *testing.T) {
	doc := linestore.FromText("ab")
	set := setOf(caret.NewCaret(pos(0, 2), 0))

	res := apply(doc, set, Config{}, func(tx *Transaction) { tx.DeleteForward() })

	if doc.Text() != "ab" {
		t.Errorf("expected document unchanged, got %q", doc.Text())
	}
	if res.Modified {
		t.Error("expected Modified false for a no-op")
	}
}

func TestInsertRuneReplacesSelection(t *testing.T) {
	doc := linestore.FromText("hello world")
	set := setOf(caret.NewEntry(pos(0, 5), pos(0, 11), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.InsertRune('!') })

	if doc.Text() != "hello!" {
		t.Errorf("expected hello!, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(0, 6))
}

func TestOverwriteMode(t *testing.T) {
	doc := linestore.FromText("abcd")
	set := setOf(caret.NewCaret(pos(0, 1), 0), caret.NewCaret(pos(0, 3), 0))

	apply(doc, set, Config{Overwrite: true}, func(tx *Transaction) { tx.InsertRune('X') })

	if doc.Text() != "aXcX" {
		t.Errorf("expected aXcX, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(0, 2), pos(0, 4))
}

func TestOverwriteAtEndOfLineInserts(t *testing.T) {
	doc := linestore.FromText("ab")
	set := setOf(caret.NewCaret(pos(0, 2), 0))

	apply(doc, set, Config{Overwrite: true}, func(tx *Transaction) { tx.InsertRune('c') })

	if doc.Text() != "abc" {
		t.Errorf("expected abc, got %q", doc.Text())
	}
}

func TestCaretsMergeWhenEditsCollide(t *testing.T) {
	doc := linestore.FromText("ab")
	set := setOf(caret.NewCaret(pos(0, 1), 0), caret.NewCaret(pos(0, 2), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.DeleteBackward() })

	if doc.Text() != "" {
		t.Errorf("expected empty document, got %q", doc.Text())
	}
	expectAnchors(t, set, pos(0, 0))
}

func TestMoveToDoesNotModify(t *testing.T) {
	doc := linestore.FromText("abc\ndef")
	set := setOf(caret.NewCaret(pos(0, 1), 0))

	res := apply(doc, set, Config{}, func(tx *Transaction) {
		tx.MoveTo(pos(1, 2), 0)
	})

	if res.Modified {
		t.Error("expected Modified false for pure movement")
	}
	expectAnchors(t, set, pos(1, 2))
	if !res.Last.Equal(pos(1, 2)) {
		t.Errorf("expected Last (1,2), got %v", res.Last)
	}
}

func TestMoveToWithSelectionCrossesAnchor(t *testing.T) {
	doc := linestore.FromText("abcdef")
	set := setOf(caret.NewCaret(pos(0, 2), 0))

	tx := Begin(doc, set, Config{})
	tx.MoveToWithSelection(pos(0, 4), 0)
	anchor, selEnd := tx.Position()
	if !anchor.Equal(pos(0, 4)) || !selEnd.Equal(pos(0, 2)) {
		t.Errorf("expected anchor (0,4) end (0,2), got %v %v", anchor, selEnd)
	}
	tx.MoveToWithSelection(pos(0, 1), 0)
	anchor, selEnd = tx.Position()
	if !anchor.Equal(pos(0, 1)) || !selEnd.Equal(pos(0, 2)) {
		t.Errorf("expected anchor (0,1) end (0,2), got %v %v", anchor, selEnd)
	}
	tx.Next()
	tx.End()
}

func TestCollapse(t *testing.T) {
	doc := linestore.FromText("abcdef")
	set := setOf(caret.NewEntry(pos(0, 4), pos(0, 1), 0))

	apply(doc, set, Config{}, func(tx *Transaction) { tx.Collapse() })

	if set.Len() != 1 || !set.At(0).IsCaret() {
		t.Fatalf("expected a single plain caret, got %v", set.All())
	}
	expectAnchors(t, set, pos(0, 4))
}

func TestMoveToPanicsOutsideDocument(t *testing.T) {
	doc := linestore.FromText("ab")
	set := setOf(caret.NewCaret(pos(0, 0), 0))
	tx := Begin(doc, set, Config{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range position")
		}
	}()
	tx.MoveTo(pos(5, 0), 0)
}

func TestGuardRejectsOverlappingTransactions(t *testing.T) {
	doc := linestore.FromText("ab")
	set := setOf(caret.NewCaret(pos(0, 0), 0))
	var g Guard
	tx := Begin(doc, set, Config{Guard: &g})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on nested Begin")
			}
		}()
		Begin(doc, set, Config{Guard: &g})
	}()

	for !tx.Done() {
		tx.Next()
	}
	tx.End()

	// The guard is released; a fresh transaction may open.
	tx = Begin(doc, set, Config{Guard: &g})
	for !tx.Done() {
		tx.Next()
	}
	tx.End()
}

func TestEndBeforeDonePanics(t *testing.T) {
	doc := linestore.FromText("ab")
	set := setOf(caret.NewCaret(pos(0, 0), 0))
	tx := Begin(doc, set, Config{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on End with carets unvisited")
		}
	}()
	tx.End()
}

func TestEmptySetTransaction(t *testing.T) {
	doc := linestore.FromText("ab")
	set := caret.NewSet()
	tx := Begin(doc, set, Config{})
	if !tx.Done() {
		t.Fatal("expected transaction over an empty set to start done")
	}
	res := tx.End()
	if res.Modified {
		t.Error("expected Modified false")
	}
}
