package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gridview/internal/engine"
	"gridview/internal/filter"
	"gridview/internal/grid"
	"gridview/internal/render"
	"gridview/internal/resize"
	"gridview/internal/selection"
	"gridview/internal/storage"
	"gridview/internal/tracks"
	"gridview/internal/view"

	"github.com/gdamore/tcell/v2"
	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

const (
	selectionTint = "#dbe6fb"
	activeTint    = "#b7cdf5"
)

type dragKind int

const (
	dragSelect dragKind = iota + 1
	dragResize
)

// drag is the pointer capture held between button press and release.
type drag struct {
	kind    dragKind
	resizer *resize.Resizer
	lastX   float64
	lastY   float64
}

type App struct {
	Sheet *engine.Sheet

	// layout
	StatusLines int
	CellPadding int

	// UI state
	Mode       string // normal | insert
	InputBuf   string
	Status     string
	Quit       bool
	WheelLines int

	// editing behavior options
	EnterStartsEdit     bool
	PrintableStartsEdit bool
	MoveAfterEnter      bool
	SelectAllOnEdit     bool
	ReplaceOnNextRune   bool

	// UI: help popup visibility
	HelpVisible bool

	drag   *drag
	follow bool // scroll to the active cell before the next frame
	logger *ll.Logger
}

func NewApp(sheet *engine.Sheet) *App {
	a := &App{
		Sheet:           sheet,
		StatusLines:     2,
		CellPadding:     1,
		Mode:            "normal",
		WheelLines:      3,
		EnterStartsEdit: true,
		MoveAfterEnter:  true,
		SelectAllOnEdit: true,
		follow:          true,
		logger:          ll.New("app").Handler(lh.NewTextHandler(io.Discard)),
	}
	a.logger.Disable()
	return a
}

// Logger replaces the app's logger.
func (a *App) Logger(logger *ll.Logger) {
	a.logger = logger.Namespace("app")
}

func (a *App) surface(s tcell.Screen) *Screen {
	return NewScreen(s, a.StatusLines, a.CellPadding)
}

// ----------------------------- Events / Input -----------------------------

func (a *App) HandleKeyEvent(s tcell.Screen, ev *tcell.EventKey) {
	a.follow = true
	if a.Mode == "insert" {
		a.handleInsertKey(ev)
		return
	}

	// If help popup is visible, consume most keys and only allow closing with Esc or "?"
	if a.HelpVisible {
		if ev.Key() == tcell.KeyEsc || ev.Rune() == '?' {
			a.HelpVisible = false
		}
		return
	}

	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0
	ctrl := mod&tcell.ModCtrl != 0
	row, col := a.Sheet.Active()

	switch ev.Key() {
	case tcell.KeyEsc:
		a.Status = ""
	case tcell.KeyCtrlC:
		a.Quit = true
	case tcell.KeyUp:
		if ctrl {
			a.resizeBy(tracks.Rows, row, -CellH)
		} else {
			a.Sheet.MoveDirectional(selection.Up, shift)
		}
	case tcell.KeyDown:
		if ctrl {
			a.resizeBy(tracks.Rows, row, CellH)
		} else {
			a.Sheet.MoveDirectional(selection.Down, shift)
		}
	case tcell.KeyLeft:
		if ctrl {
			a.resizeBy(tracks.Cols, col, -CellW)
		} else {
			a.Sheet.MoveDirectional(selection.Left, shift)
		}
	case tcell.KeyRight:
		if ctrl {
			a.resizeBy(tracks.Cols, col, CellW)
		} else {
			a.Sheet.MoveDirectional(selection.Right, shift)
		}
	case tcell.KeyHome:
		if ctrl {
			a.Sheet.MoveDirectional(selection.ColFirst, shift)
		} else {
			a.Sheet.MoveDirectional(selection.RowFirst, shift)
		}
	case tcell.KeyEnd:
		if ctrl {
			a.Sheet.MoveDirectional(selection.ColLast, shift)
		} else {
			a.Sheet.MoveDirectional(selection.RowLast, shift)
		}
	case tcell.KeyPgUp:
		a.page(s, -1, shift)
	case tcell.KeyPgDn:
		a.page(s, 1, shift)
	case tcell.KeyF2:
		a.Sheet.InsertRows(row+1, 1)
	case tcell.KeyF3:
		a.Sheet.InsertCols(col+1, 1)
	case tcell.KeyF4:
		a.Sheet.DeleteRows(row, row)
	case tcell.KeyF5:
		a.Sheet.DeleteCols(col, col)
	case tcell.KeyDelete:
		a.Sheet.CurrentRange().Each(func(r, c int) { a.Sheet.SetCellText(r, c, "") })
	case tcell.KeyEnter:
		if a.EnterStartsEdit {
			a.startEdit()
		}
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			a.Quit = true
		case 'i':
			a.startEdit()
		case ':':
			if command, ok := a.PopupInput(s, ":", ""); ok {
				a.ExecuteCommand(command)
			}
		case '?':
			a.HelpVisible = true
		default:
			if a.PrintableStartsEdit {
				a.Mode = "insert"
				a.InputBuf = string(r)
				a.ReplaceOnNextRune = false
			}
		}
	}
}

func (a *App) handleInsertKey(ev *tcell.EventKey) {
	mod := ev.Modifiers()
	switch ev.Key() {
	case tcell.KeyEsc:
		// cancel edit
		a.Mode = "normal"
		a.InputBuf = ""
		a.ReplaceOnNextRune = false
	case tcell.KeyEnter:
		if mod&tcell.ModShift != 0 || mod&tcell.ModAlt != 0 {
			a.InputBuf += "\n"
			return
		}
		row, col := a.Sheet.Anchor()
		a.Sheet.SetCellText(row, col, a.InputBuf)
		a.Mode = "normal"
		a.InputBuf = ""
		a.ReplaceOnNextRune = false
		// move after enter unless Ctrl held
		if mod&tcell.ModCtrl == 0 && a.MoveAfterEnter {
			a.Sheet.MoveDirectional(selection.Down, false)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if rs := []rune(a.InputBuf); len(rs) > 0 {
			a.InputBuf = string(rs[:len(rs)-1])
		}
		a.ReplaceOnNextRune = false
	case tcell.KeyRune:
		r := ev.Rune()
		if a.ReplaceOnNextRune {
			a.InputBuf = string(r)
			a.ReplaceOnNextRune = false
		} else {
			a.InputBuf += string(r)
		}
	}
}

func (a *App) startEdit() {
	row, col := a.Sheet.Anchor()
	a.Mode = "insert"
	a.InputBuf = a.Sheet.Cell(max(row, 0), max(col, 0)).Text
	a.ReplaceOnNextRune = a.SelectAllOnEdit
}

// resizeBy grows track i of axis by delta pixels.
func (a *App) resizeBy(axis tracks.Axis, i int, delta float64) {
	size := a.Sheet.DimensionSize(axis, i) + delta
	if err := a.Sheet.SetDimensionSize(axis, i, size); err != nil {
		a.Status = err.Error()
	}
}

// page scrolls one screen of body rows and moves the selection with it.
func (a *App) page(s tcell.Screen, dir int, extend bool) {
	_, h := a.surface(s).Size()
	hd := a.Sheet.Header()
	step := max(h-hd.Height-a.Sheet.FreezeSize(tracks.Rows), CellH)
	a.Sheet.ScrollBody(tracks.Rows, float64(dir)*step)

	body := a.visible(s)
	row, col := a.Sheet.Active()
	target := body.StartRow
	if dir > 0 {
		target = max(row, body.StartRow)
	}
	if extend {
		a.Sheet.ExtendTo(target, col)
		return
	}
	a.Sheet.SetAnchor(target, max(col, 0))
}

// visible is the body range for the current screen size.
func (a *App) visible(s tcell.Screen) view.Range {
	w, h := a.surface(s).Size()
	hd := a.Sheet.Header()
	return a.Sheet.ComputeVisibleRange(
		max(w-hd.Width-a.Sheet.FreezeSize(tracks.Cols), 0),
		max(h-hd.Height-a.Sheet.FreezeSize(tracks.Rows), 0),
	)
}

// HandleMouseEvent dispatches clicks, drags and the wheel. A drag is captured
// on press and always released on the next event without buttons.
func (a *App) HandleMouseEvent(s tcell.Screen, ev *tcell.EventMouse) {
	if a.HelpVisible || a.Mode == "insert" {
		return
	}
	cx, cy := ev.Position()
	x, y := float64(cx)*CellW+CellW/2, float64(cy)*CellH+CellH/2
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		a.Sheet.ScrollBody(tracks.Rows, -float64(a.WheelLines)*CellH)
		return
	case btn&tcell.WheelDown != 0:
		a.Sheet.ScrollBody(tracks.Rows, float64(a.WheelLines)*CellH)
		return
	case btn&tcell.WheelLeft != 0:
		a.Sheet.ScrollBody(tracks.Cols, -float64(a.WheelLines)*CellW)
		return
	case btn&tcell.WheelRight != 0:
		a.Sheet.ScrollBody(tracks.Cols, float64(a.WheelLines)*CellW)
		return
	}

	if btn&tcell.Button1 == 0 {
		a.release()
		return
	}
	if a.drag != nil {
		a.dragTo(x, y)
		return
	}
	a.press(x, y, ev.Modifiers())
}

func (a *App) press(x, y float64, mod tcell.ModMask) {
	hit := a.Sheet.PixelToCell(x, y)
	a.drag = &drag{kind: dragSelect, lastX: x, lastY: y}
	a.follow = true

	switch {
	case hit.Row < 0 && hit.Col >= 0 && x >= hit.Rect.Right()-CellW:
		a.beginResize(tracks.Cols, hit.Col, hit.Rect)
		return
	case hit.Col < 0 && hit.Row >= 0 && mod&tcell.ModCtrl != 0:
		a.beginResize(tracks.Rows, hit.Row, hit.Rect)
		return
	}

	if mod&tcell.ModShift != 0 {
		a.Sheet.ExtendTo(hit.Row, hit.Col)
		return
	}
	a.Sheet.SetAnchor(hit.Row, hit.Col)
}

func (a *App) beginResize(axis tracks.Axis, i int, rect view.Rect) {
	r := a.Sheet.Resizer(axis)
	r.Begin(i, rect)
	a.drag.kind = dragResize
	a.drag.resizer = r
}

func (a *App) dragTo(x, y float64) {
	d := a.drag
	switch d.kind {
	case dragResize:
		d.resizer.Move(x-d.lastX, y-d.lastY)
	case dragSelect:
		hit := a.Sheet.PixelToCell(x, y)
		row, col := a.Sheet.Anchor()
		// a drag from a cell stays on cells; one from a header keeps its sentinel
		if row >= 0 {
			hit.Row = max(hit.Row, 0)
		}
		if col >= 0 {
			hit.Col = max(hit.Col, 0)
		}
		a.Sheet.ExtendTo(hit.Row, hit.Col)
	}
	d.lastX, d.lastY = x, y
}

// release ends the capture whatever it was doing.
func (a *App) release() {
	d := a.drag
	a.drag = nil
	if d == nil || d.kind != dragResize {
		return
	}
	size, err := d.resizer.End()
	if err != nil {
		a.Status = err.Error()
		a.logger.Warnf("resize: %v", err)
		return
	}
	a.Status = fmt.Sprintf("%s %d: %.0fpx", d.resizer.Axis(), d.resizer.Index()+1, size)
}

// Dragging reports whether a pointer capture is held.
func (a *App) Dragging() bool { return a.drag != nil }

// Frame redraws the screen. After keyboard input or a click it first scrolls
// the active cell into view; wheel scrolling leaves the cursor where it is.
func (a *App) Frame(s tcell.Screen) {
	if a.follow && !a.Dragging() {
		a.EnsureCursorVisible(s)
		a.follow = false
	}
	a.Draw(s)
}

// ----------------------------- Drawing -----------------------------

func (a *App) Draw(s tcell.Screen) {
	s.Clear()
	sc := a.surface(s)
	a.Sheet.Render(sc)
	a.drawSelection(sc)
	a.drawGuide(sc)
	a.drawStatus(s)

	if a.HelpVisible {
		help := "\n i / Enter - edit \n Shift/Alt+Enter - newline \n Arrows - move, Shift extends \n Home/End - row start/end \n Ctrl+Home/End - column start/end \n Ctrl+arrows - col width / row height \n F2/F3 - add row/col \n F4/F5 - delete row/col \n Mouse - select, drag header edge to resize \n : - command \n :freeze R C | :merge | :unmerge \n :cw N | :rh N | :grid on|off \n :filter [COL v1,v2] | :unfilter \n :bold | :italic | :align left|center|right \n :fg #rrggbb | :bg #rrggbb | :move DIR [extend] \n :goto A1 | :o file [sheet] | :q \n "
		a.drawHelpPopup(s, help)
	}
	a.drawCursor(s)
	s.Show()
}

// drawSelection tints the selected cells over the rendered grid. Cells of
// the scrolled body are cut off where the frozen bands begin.
func (a *App) drawSelection(sc *Screen) {
	sel := a.Sheet.CurrentRange()
	fz := a.Sheet.Freeze()
	hd := a.Sheet.Header()
	w, h := sc.Size()
	bodyTop := hd.Height + a.Sheet.FreezeSize(tracks.Rows)
	bodyLeft := hd.Width + a.Sheet.FreezeSize(tracks.Cols)
	ar, ac := a.Sheet.Anchor()
	active := a.Sheet.CellToPixel(max(ar, 0), max(ac, 0))

	rows := a.Sheet.Tracks(tracks.Rows, sel.StartRow, sel.EndRow)
	cols := a.Sheet.Tracks(tracks.Cols, sel.StartCol, sel.EndCol)
	for _, r := range rows {
		if r.Pos >= h {
			break
		}
		top := hd.Height
		if r.Index >= fz.Rows {
			top = bodyTop
		}
		for _, c := range cols {
			if c.Pos >= w {
				break
			}
			left := hd.Width
			if c.Index >= fz.Cols {
				left = bodyLeft
			}
			sc.Clip(view.Rect{Left: left, Top: top, Width: max(w-left, 0), Height: max(h-top, 0)})
			color := selectionTint
			if active.Contains(c.Pos, r.Pos) {
				color = activeTint
			}
			sc.Tint(view.Rect{Left: c.Pos, Top: r.Pos, Width: c.Size, Height: r.Size}, color)
			sc.Unclip()
		}
	}
}

func (a *App) drawGuide(sc *Screen) {
	if a.drag == nil || a.drag.kind != dragResize {
		return
	}
	pos, ok := a.drag.resizer.Guide()
	if !ok {
		return
	}
	w, h := sc.Size()
	st := render.Stroke{Color: render.FreezeSeamColor, Width: 1}
	if a.drag.resizer.Axis() == tracks.Cols {
		sc.Line(pos, 0, pos, h, st)
	} else {
		sc.Line(0, pos, w, pos, st)
	}
}

func (a *App) drawStatus(s tcell.Screen) {
	w, h := s.Size()
	statusY := max(h-a.StatusLines, 0)
	statusStyle := tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite)

	row, col := a.Sheet.Anchor()
	sel := a.Sheet.CurrentRange()
	fz := a.Sheet.Freeze()
	cell := "-"
	if row >= 0 && col >= 0 {
		cell = grid.ColRowToName(col, row)
	}
	statusLeft := fmt.Sprintf("Mode:%s  Cell:%s  Sel:%s  cw=%.0f rh=%.0f  Freeze:%d,%d",
		a.Mode, cell, sel, a.Sheet.DimensionSize(tracks.Cols, max(col, 0)),
		a.Sheet.DimensionSize(tracks.Rows, max(row, 0)), fz.Rows, fz.Cols)
	a.printTextFixedWidth(s, 0, statusY, statusLeft, statusStyle, w)

	second := a.Status
	if a.drag != nil && a.drag.kind == dragResize {
		r := a.drag.resizer
		second = fmt.Sprintf("resize %s %d: %.0fpx", r.Axis(), r.Index()+1, r.Distance())
	} else if a.Mode == "insert" {
		second = "EDIT: " + a.InputBuf
	} else if text := a.Sheet.Cell(max(row, 0), max(col, 0)).Text; second == "" && text != "" {
		second = text
	}
	if a.StatusLines > 1 {
		a.printTextFixedWidth(s, 0, statusY+1, second, statusStyle, w)
	}
}

// drawCursor shows the edit caret after the buffer inside the active cell.
func (a *App) drawCursor(s tcell.Screen) {
	if a.Mode != "insert" {
		s.HideCursor()
		return
	}
	row, col := a.Sheet.Anchor()
	rect := a.Sheet.CellToPixel(max(row, 0), max(col, 0))
	lines := strings.Split(a.InputBuf, "\n")
	last := lines[len(lines)-1]
	x0, y0, x1, _ := span(rect)
	cx := x0 + a.CellPadding + min(runeLen(last), max(x1-x0-2*a.CellPadding-1, 0))
	w, h := s.Size()
	if cx < 0 || y0 < 0 || cx >= w || y0 >= h-a.StatusLines {
		s.HideCursor()
		return
	}
	s.ShowCursor(cx, y0)
}

// EnsureCursorVisible scrolls the body so the active cell is on screen.
func (a *App) EnsureCursorVisible(s tcell.Screen) {
	if s == nil {
		return
	}
	row, col := a.Sheet.Active()
	fz := a.Sheet.Freeze()
	hd := a.Sheet.Header()
	w, h := a.surface(s).Size()

	if row >= fz.Rows && row >= 0 {
		rect := a.Sheet.CellToPixel(row, max(col, 0))
		top := hd.Height + a.Sheet.FreezeSize(tracks.Rows)
		switch {
		case rect.Top < top:
			a.Sheet.ScrollBody(tracks.Rows, rect.Top-top)
		case rect.Bottom() > h && rect.Height <= h-top:
			a.Sheet.ScrollBody(tracks.Rows, rect.Bottom()-h)
		}
	}
	if col >= fz.Cols && col >= 0 {
		rect := a.Sheet.CellToPixel(max(row, 0), col)
		left := hd.Width + a.Sheet.FreezeSize(tracks.Cols)
		switch {
		case rect.Left < left:
			a.Sheet.ScrollBody(tracks.Cols, rect.Left-left)
		case rect.Right() > w && rect.Width <= w-left:
			a.Sheet.ScrollBody(tracks.Cols, rect.Right()-w)
		}
	}
}

// ----------------------------- Commands -----------------------------

// ExecuteCommand runs a ':' command. Failures land in the status line.
func (a *App) ExecuteCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}
	if err := a.execute(parts[0], parts[1:]); err != nil {
		a.Status = err.Error()
		a.logger.Warnf("command %q: %v", cmd, err)
		return
	}
	a.logger.Debugf("command %q", cmd)
}

func (a *App) execute(name string, args []string) error {
	sel := a.Sheet.CurrentRange()
	row, col := a.Sheet.Anchor()

	switch name {
	case "q", "quit":
		a.Quit = true
	case "freeze":
		rows, cols := max(row, 0), max(col, 0)
		if len(args) >= 2 {
			var err error
			if rows, err = strconv.Atoi(args[0]); err != nil {
				return errors.Newf("freeze: bad row count %q", args[0])
			}
			if cols, err = strconv.Atoi(args[1]); err != nil {
				return errors.Newf("freeze: bad column count %q", args[1])
			}
		}
		return a.Sheet.SetFreezeBoundary(rows, cols)
	case "unfreeze":
		return a.Sheet.SetFreezeBoundary(0, 0)
	case "merge":
		if !sel.Multiple() {
			return errors.Newf("merge: select more than one cell")
		}
		return a.Sheet.Merge(sel)
	case "unmerge":
		if !a.Sheet.Unmerge(max(row, 0), max(col, 0)) {
			return errors.Newf("unmerge: %s is not merged", grid.ColRowToName(max(col, 0), max(row, 0)))
		}
	case "cw", "rh":
		if len(args) < 1 {
			return errors.Newf("%s: size required", name)
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return errors.Newf("%s: bad size %q", name, args[0]).Wrap(err)
		}
		axis, lo, hi := tracks.Cols, sel.StartCol, sel.EndCol
		if name == "rh" {
			axis, lo, hi = tracks.Rows, sel.StartRow, sel.EndRow
		}
		for i := lo; i <= hi; i++ {
			if err := a.Sheet.SetDimensionSize(axis, i, v); err != nil {
				return err
			}
		}
	case "grid":
		a.Sheet.SetShowGrid(len(args) == 0 || args[0] != "off")
	case "filter":
		if len(args) == 0 {
			return a.Sheet.SetFilter(sel)
		}
		if !a.Sheet.Filter().Active() {
			return errors.Newf("filter: no filter range, run :filter first")
		}
		c, ok := columnIndex(args[0])
		if !ok {
			return errors.Newf("filter: bad column %q", args[0])
		}
		if len(args) == 1 {
			a.Sheet.AddFilter(c, filter.All, nil)
			return nil
		}
		a.Sheet.AddFilter(c, filter.In, strings.Split(strings.Join(args[1:], " "), ","))
	case "unfilter":
		a.Sheet.ClearFilter()
	case "move":
		if len(args) < 1 {
			return errors.Newf("move: direction required")
		}
		dir, ok := selection.ParseDirection(args[0])
		if !ok {
			return errors.Newf("move: unknown direction %q", args[0])
		}
		a.Sheet.MoveDirectional(dir, len(args) > 1 && args[1] == "extend")
	case "bold", "italic", "underline", "strike", "align", "fg", "bg":
		return a.restyle(name, args)
	case "goto":
		if len(args) < 1 {
			return errors.Newf("goto: cell required")
		}
		r, c, ok := grid.ParseCellRef(strings.ToUpper(args[0]))
		if !ok || r >= a.Sheet.Count(tracks.Rows) || c >= a.Sheet.Count(tracks.Cols) {
			return errors.Newf("goto: bad cell %q", args[0])
		}
		a.Sheet.SetAnchor(r, c)
	case "o", "open":
		if len(args) < 1 {
			return errors.Newf("open: file name required")
		}
		sheet := ""
		if len(args) >= 2 {
			sheet = args[1]
		}
		seed, err := storage.Load(args[0], sheet)
		if err != nil {
			return err
		}
		a.Sheet.Load(seed)
		a.Status = "opened " + args[0]
	default:
		return errors.Newf("unknown command %q", name)
	}
	return nil
}

// restyle applies one style change to every cell of the selection, keeping
// the rest of each cell's style.
func (a *App) restyle(name string, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	var change func(st *render.Style)
	switch name {
	case "bold":
		change = func(st *render.Style) { st.Font.Bold = !st.Font.Bold }
	case "italic":
		change = func(st *render.Style) { st.Font.Italic = !st.Font.Italic }
	case "underline":
		change = func(st *render.Style) { st.Underline = !st.Underline }
	case "strike":
		change = func(st *render.Style) { st.Strike = !st.Strike }
	case "align":
		align, ok := map[string]render.Align{"left": render.AlignLeft, "center": render.AlignCenter, "right": render.AlignRight}[arg]
		if !ok {
			return errors.Newf("align: expected left, center or right, got %q", arg)
		}
		change = func(st *render.Style) { st.Align = align }
	case "fg", "bg":
		if arg != "" && tcell.GetColor(arg) == tcell.ColorDefault {
			return errors.Newf("%s: unknown color %q", name, arg)
		}
		change = func(st *render.Style) {
			if name == "fg" {
				st.Color = arg
			} else {
				st.Background = arg
			}
		}
	}
	a.Sheet.CurrentRange().Each(func(r, c int) {
		st := a.Sheet.Styles().Get(a.Sheet.Cell(r, c).Style)
		change(&st)
		a.Sheet.SetCellStyle(r, c, st)
	})
	return nil
}

// columnIndex accepts a column letter ("C") or a 1-based number ("3").
func columnIndex(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n - 1, true
	}
	_, c, ok := grid.ParseCellRef(strings.ToUpper(s) + "1")
	return c, ok
}

// ----------------------------- Helpers -----------------------------

func (a *App) printTextFixedWidth(s tcell.Screen, x, y int, str string, style tcell.Style, width int) {
	runes := []rune(str)
	for i := 0; i < width; i++ {
		var ch rune = ' '
		if i < len(runes) {
			ch = runes[i]
		}
		if x+i >= 0 && y >= 0 {
			s.SetContent(x+i, y, ch, nil, style)
		}
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}
