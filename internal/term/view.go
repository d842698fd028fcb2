// Package term renders an editing surface on a terminal and feeds its
// key and mouse events back into the surface.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/caretstorm/internal/engine/caret"
	"github.com/dshills/caretstorm/internal/editor"
)

// Options configures a View.
type Options struct {
	// OnSave is invoked on Ctrl-S. May be nil.
	OnSave func() error

	// TabWidth is the tab stop interval in cells.
	TabWidth int

	// Title is shown in the status line.
	Title string
}

// View owns the terminal screen and the render/input loop for one
// surface.
type View struct {
	screen  tcell.Screen
	surface *editor.Surface
	opts    Options

	top    int
	status string

	text     tcell.Style
	selected tcell.Style
	multi    tcell.Style
	bar      tcell.Style
}

// NewView creates a view and initializes the terminal.
func NewView(s *editor.Surface, opts Options) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}

	// Derive the selection background from a desaturated blue so it reads
	// on both light and dark terminals.
	hl := colorful.Hsv(215, 0.55, 0.45)
	r, g, b := hl.RGB255()
	selBg := tcell.NewRGBColor(int32(r), int32(g), int32(b))

	return &View{
		screen:   screen,
		surface:  s,
		opts:     opts,
		text:     tcell.StyleDefault,
		selected: tcell.StyleDefault.Background(selBg),
		multi:    tcell.StyleDefault.Reverse(true),
		bar:      tcell.StyleDefault.Reverse(true),
	}, nil
}

// Close restores the terminal.
func (v *View) Close() {
	v.screen.Fini()
}

// Run drives the event loop until the user quits.
func (v *View) Run() error {
	v.render()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if quit := v.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		}
		v.render()
	}
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	shift := ev.Modifiers()&tcell.ModShift != 0
	s := v.surface
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlS:
		v.save()
	case tcell.KeyRune:
		s.TypeRune(ev.Rune())
	case tcell.KeyEnter:
		s.TypeRune('\n')
	case tcell.KeyTab:
		s.TypeRune('\t')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		s.Backspace()
	case tcell.KeyDelete:
		s.Delete()
	case tcell.KeyLeft:
		s.MoveLeft(shift)
	case tcell.KeyRight:
		s.MoveRight(shift)
	case tcell.KeyUp:
		s.MoveUp(shift)
	case tcell.KeyDown:
		s.MoveDown(shift)
	case tcell.KeyHome:
		s.MoveHome(shift)
	case tcell.KeyEnd:
		s.MoveEnd(shift)
	case tcell.KeyEscape:
		s.CollapseAll()
	case tcell.KeyInsert:
		s.ToggleOverwrite()
	}
	return false
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := v.surface.HitTest(v.top+y, float64(x))
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		switch {
		case v.surface.Selecting():
			v.surface.DragSelection(p)
		case v.surface.PreDragging():
			// Held in place; dropping selected text is not implemented.
		case v.surface.IsInSelection(p) && ev.Modifiers()&tcell.ModCtrl == 0:
			v.surface.BeginPreDrag(p)
		default:
			additive := ev.Modifiers()&tcell.ModCtrl != 0
			v.surface.BeginSelection(p, additive)
		}
	default:
		v.surface.CancelPreDrag()
		v.surface.EndSelection()
	}
}

func (v *View) save() {
	if v.opts.OnSave == nil {
		return
	}
	if err := v.opts.OnSave(); err != nil {
		v.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	v.status = "saved"
}

func (v *View) render() {
	s := v.surface
	s.EnsureSelectionCaches()
	w, h := v.screen.Size()
	rows := h - 1
	if rows < 1 {
		return
	}
	v.scrollIntoView(rows)
	v.screen.Clear()

	count := s.LineCount()
	for row := 0; row < rows && v.top+row < count; row++ {
		v.drawLine(row, s.Line(v.top+row).Text(), w)
	}
	v.drawSelections(rows, w)
	v.drawCarets(rows)
	v.drawStatus(w, h-1)
	v.screen.Show()
}

func (v *View) scrollIntoView(rows int) {
	t := v.surface.ScrollTarget().Line
	if t < v.top {
		v.top = t
	}
	if t >= v.top+rows {
		v.top = t - rows + 1
	}
}

func (v *View) drawLine(row int, text string, w int) {
	x := 0
	for _, r := range text {
		if x >= w {
			return
		}
		if r == '\t' {
			x = (x/v.opts.TabWidth + 1) * v.opts.TabWidth
			continue
		}
		v.screen.SetContent(x, row, r, nil, v.text)
		x += runewidth.RuneWidth(r)
	}
}

// drawSelections repaints the cells covered by the cached selection
// rectangles. Line height is one cell, so each rect covers one row.
func (v *View) drawSelections(rows, w int) {
	entries := v.surface.Carets().All()
	if v.surface.Selecting() {
		entries = append(entries, v.surface.ActiveSelection())
	}
	for _, e := range entries {
		rects := e.RectCache
		if e.RectCache == nil && !e.IsCaret() {
			// The in-progress selection has no cache; paint its span rows
			// from scratch.
			m, x := e.Range()
			for ln := m.Line; ln <= x.Line; ln++ {
				rects = append(rects, caret.Rect{
					Left:   0,
					Right:  float64(w),
					Top:    float64(ln),
					Bottom: float64(ln + 1),
				})
			}
		}
		for _, r := range rects {
			row := int(r.Top) - v.top
			if row < 0 || row >= rows {
				continue
			}
			for x := int(r.Left); x < int(r.Right) && x < w; x++ {
				c, _, _, _ := v.screen.GetContent(x, row)
				v.screen.SetContent(x, row, c, nil, v.selected)
			}
		}
	}
}

func (v *View) drawCarets(rows int) {
	set := v.surface.Carets()
	n := set.Len()
	set.ForEach(func(i int, e caret.Entry) {
		row := e.Anchor.Line - v.top
		if row < 0 || row >= rows {
			return
		}
		x := int(e.PosCache)
		if i == n-1 {
			v.screen.ShowCursor(x, row)
			return
		}
		c, _, _, _ := v.screen.GetContent(x, row)
		v.screen.SetContent(x, row, c, nil, v.multi)
	})
}

func (v *View) drawStatus(w, row int) {
	mode := "INS"
	if v.surface.Overwrite() {
		mode = "OVR"
	}
	target := v.surface.ScrollTarget()
	line := fmt.Sprintf(" %s  %s  %d carets  %d:%d  %s",
		v.opts.Title, mode, v.surface.Carets().Len(),
		target.Line+1, target.Col+1, v.status)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		v.screen.SetContent(x, row, r, nil, v.bar)
		x += runewidth.RuneWidth(r)
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, row, ' ', nil, v.bar)
	}
}
