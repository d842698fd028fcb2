package linestore

import (
	"strings"

	"github.com/dshills/caretstorm/internal/engine/caret"
)

// AdvisedLines is the default cap on lines per block. It bounds the cost
// of splicing a line into a block; see the package documentation for the
// rebalancing policy.
const AdvisedLines = 1000

// Block is a bounded group of consecutive lines.
type Block struct {
	lines []*Line
}

// Len returns the number of lines in the block.
func (b *Block) Len() int {
	return len(b.lines)
}

// Line returns the line at the given index within the block.
func (b *Block) Line(i int) *Line {
	return b.lines[i]
}

// Decoder converts raw bytes into text. It is supplied by the external
// Unicode codec collaborator.
type Decoder interface {
	Decode(data []byte) (string, error)
}

// Encoder converts text back into raw bytes.
type Encoder interface {
	Encode(text string) ([]byte, error)
}

// Option configures a Document at construction time.
type Option func(*Document)

// WithAdvisedLines overrides the advised per-block line cap. n must be
// positive.
func WithAdvisedLines(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.advised = n
		}
	}
}

// Document is an ordered sequence of blocks of lines. See the package
// documentation for its invariants.
type Document struct {
	blocks  []*Block
	advised int
}

// New creates a document holding a single empty sentinel line.
func New(opts ...Option) *Document {
	return FromText("", opts...)
}

// FromText creates a document from already-decoded text.
func FromText(text string, opts ...Option) *Document {
	d := &Document{advised: AdvisedLines}
	for _, opt := range opts {
		opt(d)
	}
	d.blocks = []*Block{{}}
	ScanLines(text, d.appendLoaded)
	return d
}

// Load decodes data with dec and builds a document from the result.
func Load(data []byte, dec Decoder, opts ...Option) (*Document, error) {
	text, err := dec.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromText(text, opts...), nil
}

func (d *Document) appendLoaded(content string, ending Ending) {
	last := d.blocks[len(d.blocks)-1]
	if len(last.lines) == d.advised {
		last = &Block{}
		d.blocks = append(d.blocks, last)
	}
	last.lines = append(last.lines, NewLine(content, ending))
}

// Text reassembles the document into a single string, applying each
// line's terminator.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, b := range d.blocks {
		for _, l := range b.lines {
			sb.WriteString(l.Text())
			sb.WriteString(l.ending.Sequence())
		}
	}
	return sb.String()
}

// Save encodes the reassembled text with enc. Save(Load(b)) == b for all
// well-formed inputs.
func (d *Document) Save(enc Encoder) ([]byte, error) {
	return enc.Encode(d.Text())
}

// BlockCount returns the number of blocks.
func (d *Document) BlockCount() int {
	return len(d.blocks)
}

// LineCount returns the total number of lines. The value is recomputed on
// each call; document mutation is line-edit-driven, not count-query-driven.
func (d *Document) LineCount() int {
	n := 0
	for _, b := range d.blocks {
		n += len(b.lines)
	}
	return n
}

// At returns a handle to the line with the given global index. An
// out-of-range index is a programmer error and panics.
func (d *Document) At(index int) Handle {
	if index < 0 {
		panic("linestore: line index out of range")
	}
	v := index
	for bi, b := range d.blocks {
		if len(b.lines) > v {
			return Handle{d: d, bi: bi, li: v}
		}
		v -= len(b.lines)
	}
	panic("linestore: line index out of range")
}

// Begin returns a handle to the first line.
func (d *Document) Begin() Handle {
	return Handle{d: d}
}

// BeforeEnd returns a handle to the final (sentinel) line.
func (d *Document) BeforeEnd() Handle {
	bi := len(d.blocks) - 1
	return Handle{d: d, bi: bi, li: len(d.blocks[bi].lines) - 1}
}

// Insert inserts l before the line h refers to and returns a handle to
// the new line. Blocks are not re-split on insertion.
func (d *Document) Insert(h Handle, l *Line) Handle {
	h.mustBelong(d)
	b := d.blocks[h.bi]
	b.lines = append(b.lines, nil)
	copy(b.lines[h.li+1:], b.lines[h.li:])
	b.lines[h.li] = l
	return Handle{d: d, bi: h.bi, li: h.li}
}

// InsertAfter inserts l after the line h refers to and returns a handle
// to the new line.
func (d *Document) InsertAfter(h Handle, l *Line) Handle {
	h.mustBelong(d)
	b := d.blocks[h.bi]
	at := h.li + 1
	b.lines = append(b.lines, nil)
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = l
	return Handle{d: d, bi: h.bi, li: at}
}

// Erase removes the line h refers to and returns a handle to the line
// that follows it, or to the new final line when the erased line was the
// last one. A block emptied by the erase is removed. Erasing the only
// remaining line is a programmer error and panics.
func (d *Document) Erase(h Handle) Handle {
	h.mustBelong(d)
	if d.LineCount() == 1 {
		panic("linestore: erase of the only line")
	}
	atEnd := h.Equal(d.BeforeEnd())
	var ret Handle
	if atEnd {
		ret = h.Prev()
	}
	d.doErase(h)
	if atEnd {
		return ret
	}
	// The erase may have emptied the block or consumed its tail; renormalize
	// the handle to the identity of the following line.
	if h.bi < len(d.blocks) && h.li < len(d.blocks[h.bi].lines) {
		return Handle{d: d, bi: h.bi, li: h.li}
	}
	return Handle{d: d, bi: h.bi + 1}
}

// EraseAfter removes the line following h and returns h.
func (d *Document) EraseAfter(h Handle) Handle {
	d.Erase(h.Next())
	return Handle{d: d, bi: h.bi, li: h.li}
}

func (d *Document) doErase(h Handle) {
	b := d.blocks[h.bi]
	b.lines = append(b.lines[:h.li], b.lines[h.li+1:]...)
	if len(b.lines) == 0 {
		d.blocks = append(d.blocks[:h.bi], d.blocks[h.bi+1:]...)
	}
}

// Substr returns the text covered by [beg, end), terminators included for
// every line but the last. end must not order before beg.
func (d *Document) Substr(beg, end caret.Position) string {
	if end.Less(beg) {
		panic("linestore: inverted substr range")
	}
	h := d.At(beg.Line)
	if beg.Line == end.Line {
		return h.Line().TextRange(beg.Col, end.Col)
	}
	var sb strings.Builder
	sb.WriteString(h.Line().TextFrom(beg.Col))
	sb.WriteString(h.Line().Ending().Sequence())
	h = h.Next()
	for cl := beg.Line + 1; cl < end.Line; cl++ {
		sb.WriteString(h.Line().Text())
		sb.WriteString(h.Line().Ending().Sequence())
		h = h.Next()
	}
	sb.WriteString(h.Line().TextRange(0, end.Col))
	return sb.String()
}
