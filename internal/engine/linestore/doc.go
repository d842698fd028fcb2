// Package linestore provides the line-oriented text store for a document.
//
// A Document is an ordered sequence of Lines grouped into bounded-size
// Blocks so that structural edits (inserting or erasing a line) only
// splice within one small block. The package handles:
//
//   - Loading raw bytes into lines via a caller-supplied Codec, scanning
//     for \r, \n and \r\n terminators
//   - Saving lines back to the exact original byte stream (round-trip law:
//     Save(Load(b)) == b)
//   - Line lookup by index and a Handle type that walks lines across
//     block boundaries in both directions
//   - Majority-vote detection of the document's dominant line ending
//
// Document Invariants:
//
// Exactly one line carries EndingNone, and it is the last line of the last
// block: the sentinel that distinguishes "file ends with a terminator"
// from "file's last line is empty". Blocks are never empty; erasing the
// last line of a block removes the block. Concatenating every line's
// content followed by its terminator reproduces the loaded text exactly.
//
// Blocks are capped at an advised line count on load only. Insertions do
// not re-split blocks, so a heavily edited block may exceed the advised
// size; At stays O(blocks + offset within block) either way.
//
// Out-of-range indices are programmer errors and panic. A Document is
// owned by exactly one editing surface and is not safe for concurrent use.
package linestore
