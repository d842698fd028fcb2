package linestore

// Handle is a bidirectional position within a document: a specific line
// inside a specific block. Incrementing past a block's last line moves to
// the next block's first line, and vice versa for decrementing.
//
// A handle is only valid until the next structural edit of the document;
// carets store positions (line indices) and re-resolve a handle within
// the scope of a transaction. Walking a handle off either end of the
// document is a programmer error and panics.
type Handle struct {
	d      *Document
	bi, li int
}

// Line returns the line the handle refers to.
func (h Handle) Line() *Line {
	return h.d.blocks[h.bi].lines[h.li]
}

// Next returns a handle to the following line, crossing into the next
// block when needed.
func (h Handle) Next() Handle {
	h.li++
	if h.li == len(h.d.blocks[h.bi].lines) {
		h.bi++
		h.li = 0
		if h.bi == len(h.d.blocks) {
			panic("linestore: handle advanced past the last line")
		}
	}
	return h
}

// Prev returns a handle to the preceding line, crossing into the previous
// block when needed.
func (h Handle) Prev() Handle {
	if h.li == 0 {
		if h.bi == 0 {
			panic("linestore: handle moved before the first line")
		}
		h.bi--
		h.li = len(h.d.blocks[h.bi].lines)
	}
	h.li--
	return h
}

// Equal reports structural equality: same document, same block, same line.
func (h Handle) Equal(o Handle) bool {
	return h.d == o.d && h.bi == o.bi && h.li == o.li
}

func (h Handle) mustBelong(d *Document) {
	if h.d != d {
		panic("linestore: handle belongs to a different document")
	}
}
