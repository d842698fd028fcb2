package linestore

// ScanLines splits text into lines at \r, \n and \r\n boundaries and calls
// emit once per line with the content (terminator excluded) and the
// terminator tag. The final call always carries EndingNone: when the text
// ends with a terminator an extra empty sentinel line is emitted, so that
// a trailing terminator and a trailing empty line remain distinguishable.
func ScanLines(text string, emit func(content string, ending Ending)) {
	var cur []rune
	last := rune(0)
	for _, r := range text {
		if last == '\r' {
			if r == '\n' {
				emit(string(cur), EndingCRLF)
				cur = cur[:0]
				last = r
				continue
			}
			emit(string(cur), EndingCR)
			cur = cur[:0]
		}
		switch r {
		case '\n':
			emit(string(cur), EndingLF)
			cur = cur[:0]
		case '\r':
			// held back until the next rune decides between CR and CRLF
		default:
			cur = append(cur, r)
		}
		last = r
	}
	if last == '\r' {
		emit(string(cur), EndingCR)
		emit("", EndingNone)
		return
	}
	emit(string(cur), EndingNone)
}
