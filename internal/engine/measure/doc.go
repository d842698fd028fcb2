// Package measure provides the width-measurement collaborator the editing
// surface feeds caret baselines from.
//
// The engine itself never measures text; it asks a Measurer to map a
// column to a horizontal coordinate (for baselines and selection
// rectangles) and a horizontal coordinate back to a column (for
// baseline-driven vertical caret movement and mouse hit testing).
//
// Monospace implements Measurer for cell-based terminals: grapheme
// clusters are segmented with rivo/uniseg, cluster widths come from
// mattn/go-runewidth, and tabs advance to the next tab stop.
package measure
