package measure

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measurer maps between columns (rune indices into a line's content) and
// horizontal coordinates.
type Measurer interface {
	// PrefixWidth returns the x coordinate of the caret sitting at the
	// given column of line.
	PrefixWidth(line string, col int) float64

	// RunWidth returns the width of the whole line.
	RunWidth(line string) float64

	// HitColumn returns the column whose caret location is visually
	// closest to x, between 0 and the line length inclusive.
	HitColumn(line string, x float64) int

	// CellWidth returns the width of one plain cell, used to pad
	// selection rectangles past a line's terminator.
	CellWidth() float64
}

// Monospace measures text in terminal cells.
type Monospace struct {
	// TabWidth is the tab stop interval in cells.
	TabWidth int

	// Cell scales cell counts into coordinates. 1 renders one cell per
	// coordinate unit.
	Cell float64
}

// NewMonospace creates a Monospace measurer with the given tab width.
func NewMonospace(tabWidth int) *Monospace {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &Monospace{TabWidth: tabWidth, Cell: 1}
}

// CellWidth returns the width of one plain cell.
func (m *Monospace) CellWidth() float64 {
	return m.Cell
}

// clusterWidth returns the width of one grapheme cluster starting at pos.
func (m *Monospace) clusterWidth(cluster string, pos float64) float64 {
	if cluster == "\t" {
		tabw := float64(m.TabWidth) * m.Cell
		return tabw*(math.Floor(pos/tabw)+1) - pos
	}
	return float64(runewidth.StringWidth(cluster)) * m.Cell
}

// PrefixWidth returns the x coordinate of the caret at col.
func (m *Monospace) PrefixWidth(line string, col int) float64 {
	pos := 0.0
	runes := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() && runes < col {
		cluster := g.Str()
		pos += m.clusterWidth(cluster, pos)
		runes += len(g.Runes())
	}
	return pos
}

// RunWidth returns the width of the whole line.
func (m *Monospace) RunWidth(line string) float64 {
	pos := 0.0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		pos += m.clusterWidth(g.Str(), pos)
	}
	return pos
}

// HitColumn returns the column closest to x. A coordinate left of a
// cluster's midpoint lands before the cluster, at or right of it lands
// after.
func (m *Monospace) HitColumn(line string, x float64) int {
	pos := 0.0
	runes := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := m.clusterWidth(g.Str(), pos)
		if x < pos+w/2 {
			return runes
		}
		pos += w
		runes += len(g.Runes())
	}
	return runes
}
