package linestore

// CountEndings walks every line and counts the occurrences of each
// terminator kind. The sentinel line's EndingNone is not counted.
func CountEndings(d *Document) (cr, lf, crlf int) {
	for _, b := range d.blocks {
		for _, l := range b.lines {
			switch l.ending {
			case EndingCR:
				cr++
			case EndingLF:
				lf++
			case EndingCRLF:
				crlf++
			}
		}
	}
	return cr, lf, crlf
}

// DetectLineEnding picks a default terminator for newly inserted lines by
// majority vote over the document's existing terminators. Ties resolve in
// a fixed order: CR wins only with a strict majority over both others, LF
// wins with a strict majority over CRLF, otherwise CRLF. A document with
// no terminators at all therefore yields CRLF.
//
// This is caller policy, not a store invariant; the store never consults
// the result.
func DetectLineEnding(d *Document) Ending {
	cr, lf, crlf := CountEndings(d)
	switch {
	case cr > lf && cr > crlf:
		return EndingCR
	case lf > crlf:
		return EndingLF
	default:
		return EndingCRLF
	}
}
