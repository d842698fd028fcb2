package caret

import "sort"

// Set is an ordered collection of carets and selections, keyed by anchor.
// Structurally duplicate anchors are permitted, but no two entries ever
// have intersecting ranges: Add merges the incoming entry with every
// existing entry it overlaps or touches before inserting it.
type Set struct {
	entries []Entry
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{}
}

// NewSetAt creates a set holding a single plain caret at p.
func NewSetAt(p Position) *Set {
	s := &Set{}
	s.Add(NewCaret(p, 0))
	return s
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// At returns a copy of the entry at index i.
func (s *Set) At(i int) Entry {
	return s.entries[i]
}

// All returns a copy of all entries in ascending anchor order.
func (s *Set) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ForEach calls fn for each entry in ascending anchor order.
func (s *Set) ForEach(fn func(i int, e Entry)) {
	for i, e := range s.entries {
		fn(i, e)
	}
}

// Last returns the entry with the greatest anchor. The set must not be
// empty.
func (s *Set) Last() Entry {
	return s.entries[len(s.entries)-1]
}

// Clear removes all entries.
func (s *Set) Clear() {
	s.entries = s.entries[:0]
}

// ReplaceAll replaces the contents of the set with the given entries,
// which must already be sorted and non-overlapping (typically the output
// of a completed edit transaction).
func (s *Set) ReplaceAll(entries []Entry) {
	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)
}

// Add merge-inserts an entry.
//
// Every existing entry whose range intersects the incoming entry's range
// (touching at a single point counts) is combined with it, repeatedly,
// until no intersection remains; the single combined entry is then
// inserted. Add returns the index of the inserted entry and whether any
// merge took place. When a merge happened the entry's baseline is stale
// and should be recomputed by the caller.
//
// Entries with negative coordinates are a programmer error and panic.
func (s *Set) Add(e Entry) (int, bool) {
	if e.Anchor.Line < 0 || e.Anchor.Col < 0 || e.SelectionEnd.Line < 0 || e.SelectionEnd.Col < 0 {
		panic("caret: malformed entry: " + e.String())
	}
	res := e
	res.RectCache = nil
	merged := false
	for {
		hit := -1
		var comb Entry
		for i, cur := range s.entries {
			if c, ok := combine(res, cur); ok {
				hit, comb = i, c
				break
			}
		}
		if hit < 0 {
			break
		}
		s.entries = append(s.entries[:hit], s.entries[hit+1:]...)
		comb.Baseline = res.Baseline
		res = comb
		merged = true
	}
	idx := sort.Search(len(s.entries), func(i int) bool {
		return res.Anchor.Less(s.entries[i].Anchor)
	})
	s.entries = append(s.entries, Entry{})
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = res
	return idx, merged
}

// combine attempts to merge two entries into one.
//
// If one entry is a plain caret lying within the other's closed range, the
// result is exactly the other entry's endpoint pair: the caret is absorbed
// without disturbing the selection's direction or extent. Two disjoint,
// non-touching ranges do not merge. Otherwise the result spans the union
// of both ranges, oriented the way the accumulating entry a is oriented.
func combine(a, b Entry) (Entry, bool) {
	m1, x1 := a.Range()
	m2, x2 := b.Range()
	if a.IsCaret() && m2.LessEq(a.Anchor) && a.Anchor.LessEq(x2) {
		return Entry{Anchor: b.Anchor, SelectionEnd: b.SelectionEnd}, true
	}
	if b.IsCaret() && m1.LessEq(b.Anchor) && b.Anchor.LessEq(x1) {
		return Entry{Anchor: a.Anchor, SelectionEnd: a.SelectionEnd}, true
	}
	if x1.Less(m2) || x2.Less(m1) {
		return Entry{}, false
	}
	gmin, _ := MinMax(m1, m2)
	_, gmax := MinMax(x1, x2)
	if a.Anchor.Less(a.SelectionEnd) {
		return Entry{Anchor: gmin, SelectionEnd: gmax}, true
	}
	return Entry{Anchor: gmax, SelectionEnd: gmin}, true
}

// IsInSelection returns true if p lies within some entry's closed range
// and that entry has selected text. Plain carets never cover their own
// point for this query.
func (s *Set) IsInSelection(p Position) bool {
	for _, e := range s.entries {
		if e.IsCaret() {
			continue
		}
		m, x := e.Range()
		if m.LessEq(p) && p.LessEq(x) {
			return true
		}
	}
	return false
}

// SetBaseline overwrites the baseline of the entry at index i.
func (s *Set) SetBaseline(i int, baseline float64) {
	s.entries[i].Baseline = baseline
}

// SetCaches fills the rendering caches of the entry at index i.
func (s *Set) SetCaches(i int, pos float64, rects []Rect) {
	s.entries[i].PosCache = pos
	s.entries[i].RectCache = rects
}

// InvalidateCaches clears the rendering caches of every entry.
func (s *Set) InvalidateCaches() {
	for i := range s.entries {
		s.entries[i].PosCache = 0
		s.entries[i].RectCache = nil
	}
}
