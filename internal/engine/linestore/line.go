package linestore

// Ending specifies the terminator that follows a line's content.
type Ending uint8

const (
	// EndingNone marks the document's final line: no terminator follows.
	EndingNone Ending = iota
	EndingCR          // Old Mac: \r
	EndingLF          // Unix: \n
	EndingCRLF        // Windows: \r\n
)

// String returns the escaped representation of the ending.
func (e Ending) String() string {
	switch e {
	case EndingCR:
		return "\\r"
	case EndingLF:
		return "\\n"
	case EndingCRLF:
		return "\\r\\n"
	default:
		return ""
	}
}

// Sequence returns the actual terminator characters. EndingNone yields an
// empty string.
func (e Ending) Sequence() string {
	switch e {
	case EndingCR:
		return "\r"
	case EndingLF:
		return "\n"
	case EndingCRLF:
		return "\r\n"
	default:
		return ""
	}
}

// Line is one line of text plus its terminator tag. Columns are rune
// indices into the content; the terminator is not part of the content.
type Line struct {
	runes  []rune
	ending Ending
}

// NewLine creates a line with the given content and ending.
func NewLine(content string, ending Ending) *Line {
	return &Line{runes: []rune(content), ending: ending}
}

// Text returns the line's content without its terminator.
func (l *Line) Text() string {
	return string(l.runes)
}

// Len returns the content length in runes.
func (l *Line) Len() int {
	return len(l.runes)
}

// Ending returns the line's terminator tag.
func (l *Line) Ending() Ending {
	return l.ending
}

// SetEnding replaces the line's terminator tag.
func (l *Line) SetEnding(e Ending) {
	l.ending = e
}

// TextRange returns the content between the given columns.
func (l *Line) TextRange(from, to int) string {
	l.check(from)
	l.check(to)
	return string(l.runes[from:to])
}

// TextFrom returns the content from the given column to the end of line.
func (l *Line) TextFrom(col int) string {
	l.check(col)
	return string(l.runes[col:])
}

// Insert inserts s at the given column.
func (l *Line) Insert(col int, s string) {
	l.check(col)
	ins := []rune(s)
	l.runes = append(l.runes[:col], append(ins, l.runes[col:]...)...)
}

// Append appends s to the end of the content.
func (l *Line) Append(s string) {
	l.runes = append(l.runes, []rune(s)...)
}

// Delete removes the content between the given columns and returns it.
func (l *Line) Delete(from, to int) string {
	l.check(from)
	l.check(to)
	removed := string(l.runes[from:to])
	l.runes = append(l.runes[:from], l.runes[to:]...)
	return removed
}

// Cut truncates the line at the given column and returns the removed
// suffix.
func (l *Line) Cut(col int) string {
	l.check(col)
	rest := string(l.runes[col:])
	l.runes = l.runes[:col]
	return rest
}

// Overwrite replaces the rune at the given column and returns the old
// rune. The column must address an existing rune.
func (l *Line) Overwrite(col int, r rune) rune {
	if col < 0 || col >= len(l.runes) {
		panic("linestore: overwrite column out of range")
	}
	old := l.runes[col]
	l.runes[col] = r
	return old
}

func (l *Line) check(col int) {
	if col < 0 || col > len(l.runes) {
		panic("linestore: column out of range")
	}
}
