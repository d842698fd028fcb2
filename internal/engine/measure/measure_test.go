package measure

import "testing"

func TestPrefixWidthPlain(t *testing.T) {
	m := NewMonospace(4)
	if got := m.PrefixWidth("hello", 3); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
	if got := m.PrefixWidth("hello", 0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := m.PrefixWidth("hello", 5); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestTabsSnapToStops(t *testing.T) {
	m := NewMonospace(4)
	cases := []struct {
		line string
		col  int
		want float64
	}{
		{"\tx", 1, 4},   // tab from column 0 fills to the first stop
		{"ab\tx", 3, 4}, // tab from column 2 fills the remainder
		{"abcd\tx", 5, 8},
		{"\t\tx", 2, 8},
	}
	for _, c := range cases {
		if got := m.PrefixWidth(c.line, c.col); got != c.want {
			t.Errorf("PrefixWidth(%q, %d): expected %v, got %v", c.line, c.col, c.want, got)
		}
	}
}

func TestWideRunes(t *testing.T) {
	m := NewMonospace(4)
	// CJK characters occupy two cells.
	if got := m.PrefixWidth("你好x", 2); got != 4 {
		t.Errorf("expected 4, got %v", got)
	}
	if got := m.RunWidth("你好x"); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestRunWidth(t *testing.T) {
	m := NewMonospace(8)
	if got := m.RunWidth("ab\tc"); got != 9 {
		t.Errorf("expected 9, got %v", got)
	}
	if got := m.RunWidth(""); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestHitColumnMidpointRule(t *testing.T) {
	m := NewMonospace(4)
	cases := []struct {
		line string
		x    float64
		want int
	}{
		{"hello", 0, 0},
		{"hello", 0.4, 0},  // left of the first midpoint
		{"hello", 0.5, 1},  // at the midpoint lands after
		{"hello", 2.7, 3},
		{"hello", 99, 5},   // past the end clamps to line length
		{"", 10, 0},
		{"\tx", 1.9, 0},    // left of the tab's midpoint
		{"\tx", 2.0, 1},
		{"你x", 0.9, 0},     // wide cluster midpoint sits at one cell
		{"你x", 1.0, 1},
	}
	for _, c := range cases {
		if got := m.HitColumn(c.line, c.x); got != c.want {
			t.Errorf("HitColumn(%q, %v): expected %d, got %d", c.line, c.x, c.want, got)
		}
	}
}

func TestCellScaling(t *testing.T) {
	m := &Monospace{TabWidth: 4, Cell: 2}
	if got := m.PrefixWidth("ab", 2); got != 4 {
		t.Errorf("expected 4, got %v", got)
	}
	if got := m.CellWidth(); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}

func TestNewMonospaceDefaultsTabWidth(t *testing.T) {
	m := NewMonospace(0)
	if m.TabWidth != 4 {
		t.Errorf("expected default tab width 4, got %d", m.TabWidth)
	}
	if m.Cell != 1 {
		t.Errorf("expected cell width 1, got %v", m.Cell)
	}
}
