package app

import (
	"strings"
	"testing"

	"gridview/internal/engine"
	"gridview/internal/grid"
	"gridview/internal/render"
	"gridview/internal/tracks"

	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	// 80 columns, 10 grid lines above the two status lines
	s.SetSize(80, 12)
	return NewApp(engine.New(engine.DefaultSettings())), s
}

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, mod)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func lineText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawShowsHeadersAndText(t *testing.T) {
	a, s := newTestApp(t)
	a.Sheet.SetCellText(0, 0, "hello")
	a.Sheet.SetCellText(2, 1, "world")
	a.Draw(s)

	header := lineText(s, 0)
	for _, name := range []string{"A", "B", "G"} {
		if !strings.Contains(header, name) {
			t.Errorf("header line %q has no %s", header, name)
		}
	}
	if got := lineText(s, 1); !strings.Contains(got, "hello") {
		t.Errorf("line 1 = %q, expected hello", got)
	}
	if got := lineText(s, 3); !strings.Contains(got, "world") {
		t.Errorf("line 3 = %q, expected world", got)
	}
	if got := lineText(s, 10); !strings.Contains(got, "Cell:A1") {
		t.Errorf("status line = %q", got)
	}
}

func TestDrawTintsActiveCell(t *testing.T) {
	a, s := newTestApp(t)
	a.Sheet.SetAnchor(0, 0)
	a.Draw(s)

	// column A spans characters 6..15 of line 1
	_, _, st, _ := s.GetContent(8, 1)
	if _, bg, _ := st.Decompose(); bg != tcell.GetColor(activeTint) {
		t.Errorf("active cell background = %v", bg)
	}
	_, _, st, _ = s.GetContent(18, 1)
	if _, bg, _ := st.Decompose(); bg == tcell.GetColor(activeTint) || bg == tcell.GetColor(selectionTint) {
		t.Errorf("unselected cell is tinted")
	}
}

func TestKeyMovesAndExtends(t *testing.T) {
	a, s := newTestApp(t)
	a.HandleKeyEvent(s, key(tcell.KeyRight, tcell.ModNone))
	a.HandleKeyEvent(s, key(tcell.KeyDown, tcell.ModShift))
	a.HandleKeyEvent(s, key(tcell.KeyDown, tcell.ModShift))

	if got := a.Sheet.CurrentRange(); got != grid.NewRange(0, 1, 2, 1) {
		t.Errorf("CurrentRange() = %v, expected B1:B3", got)
	}
	a.HandleKeyEvent(s, key(tcell.KeyHome, tcell.ModNone))
	if got := a.Sheet.CurrentRange(); got != grid.Single(0, 0) {
		t.Errorf("Home -> %v, expected A1", got)
	}
}

func TestCtrlArrowResizes(t *testing.T) {
	a, s := newTestApp(t)
	a.HandleKeyEvent(s, key(tcell.KeyRight, tcell.ModCtrl))
	a.HandleKeyEvent(s, key(tcell.KeyDown, tcell.ModCtrl))
	if got := a.Sheet.DimensionSize(tracks.Cols, 0); got != 110 {
		t.Errorf("col width = %v, expected 110", got)
	}
	if got := a.Sheet.DimensionSize(tracks.Rows, 0); got != 50 {
		t.Errorf("row height = %v, expected 50", got)
	}

	for range 10 {
		a.HandleKeyEvent(s, key(tcell.KeyUp, tcell.ModCtrl))
	}
	if got := a.Sheet.DimensionSize(tracks.Rows, 0); got != 5 {
		t.Errorf("row height = %v, expected the 5px minimum", got)
	}
}

func TestInsertModeCommits(t *testing.T) {
	a, s := newTestApp(t)
	a.Sheet.SetCellText(0, 0, "old")
	a.HandleKeyEvent(s, runeKey('i'))
	if a.Mode != "insert" || a.InputBuf != "old" {
		t.Fatalf("after i: mode %q, buf %q", a.Mode, a.InputBuf)
	}
	a.HandleKeyEvent(s, runeKey('4'))
	a.HandleKeyEvent(s, runeKey('2'))
	a.HandleKeyEvent(s, key(tcell.KeyEnter, tcell.ModNone))

	if got := a.Sheet.Cell(0, 0).Text; got != "42" {
		t.Errorf("cell text = %q, expected 42", got)
	}
	if r, c := a.Sheet.Anchor(); r != 1 || c != 0 {
		t.Errorf("anchor after Enter = (%d, %d), expected (1, 0)", r, c)
	}

	a.HandleKeyEvent(s, runeKey('i'))
	a.HandleKeyEvent(s, runeKey('x'))
	a.HandleKeyEvent(s, key(tcell.KeyEsc, tcell.ModNone))
	if a.Mode != "normal" || a.Sheet.Cell(1, 0).Text != "" {
		t.Errorf("Esc must discard the edit")
	}
}

func TestHelpConsumesKeys(t *testing.T) {
	a, s := newTestApp(t)
	a.HandleKeyEvent(s, runeKey('?'))
	a.HandleKeyEvent(s, key(tcell.KeyRight, tcell.ModNone))
	if r, c := a.Sheet.Anchor(); r != 0 || c != 0 {
		t.Errorf("key leaked through the help popup")
	}
	a.HandleKeyEvent(s, key(tcell.KeyEsc, tcell.ModNone))
	if a.HelpVisible {
		t.Errorf("Esc must close help")
	}
	a.HandleKeyEvent(s, runeKey('q'))
	if !a.Quit {
		t.Errorf("q must quit")
	}
}

func TestExecuteCommand(t *testing.T) {
	a, _ := newTestApp(t)

	a.ExecuteCommand("freeze 1 2")
	if got := a.Sheet.Freeze(); got.Rows != 1 || got.Cols != 2 {
		t.Errorf("freeze = %+v", got)
	}
	a.ExecuteCommand("unfreeze")
	if got := a.Sheet.Freeze(); got.Rows != 0 || got.Cols != 0 {
		t.Errorf("unfreeze left %+v", got)
	}

	a.ExecuteCommand("goto c5")
	if r, c := a.Sheet.Anchor(); r != 4 || c != 2 {
		t.Errorf("goto c5 -> (%d, %d)", r, c)
	}

	a.Sheet.ExtendTo(5, 3)
	a.ExecuteCommand("cw 150")
	for _, col := range []int{2, 3} {
		if got := a.Sheet.DimensionSize(tracks.Cols, col); got != 150 {
			t.Errorf("col %d width = %v", col, got)
		}
	}
	a.ExecuteCommand("merge")
	if spans := a.Sheet.Merges(); len(spans) != 1 || spans[0] != grid.NewRange(4, 2, 5, 3) {
		t.Errorf("merges = %v", spans)
	}
	a.ExecuteCommand("unmerge")
	if spans := a.Sheet.Merges(); len(spans) != 0 {
		t.Errorf("unmerge left %v", spans)
	}

	a.Status = ""
	a.ExecuteCommand("bogus")
	if !strings.Contains(a.Status, "bogus") {
		t.Errorf("status = %q", a.Status)
	}
	a.ExecuteCommand("freeze 500 0")
	if a.Sheet.Freeze().Rows != 0 {
		t.Errorf("out-of-range freeze applied")
	}
}

func TestFilterCommand(t *testing.T) {
	a, _ := newTestApp(t)
	for i, v := range []string{"color", "red", "blue", "red"} {
		a.Sheet.SetCellText(i, 0, v)
	}
	a.Sheet.SetAnchor(0, 0)
	a.Sheet.ExtendTo(3, 0)
	a.ExecuteCommand("filter")
	a.ExecuteCommand("filter A red")
	if !a.Sheet.IsHidden(2) || a.Sheet.IsHidden(1) || a.Sheet.IsHidden(3) {
		t.Errorf("only row 3 (blue) should be hidden")
	}
	a.ExecuteCommand("unfilter")
	if a.Sheet.IsHidden(2) {
		t.Errorf("unfilter left row hidden")
	}
}

func TestMouseSelectAndDrag(t *testing.T) {
	a, s := newTestApp(t)
	// character (16, 2) is inside B2
	a.HandleMouseEvent(s, tcell.NewEventMouse(16, 2, tcell.Button1, tcell.ModNone))
	if !a.Dragging() {
		t.Fatalf("press must capture the pointer")
	}
	a.HandleMouseEvent(s, tcell.NewEventMouse(26, 4, tcell.Button1, tcell.ModNone))
	a.HandleMouseEvent(s, tcell.NewEventMouse(26, 4, tcell.ButtonNone, tcell.ModNone))

	if a.Dragging() {
		t.Errorf("release must drop the capture")
	}
	if got := a.Sheet.CurrentRange(); got != grid.NewRange(1, 1, 3, 2) {
		t.Errorf("CurrentRange() = %v, expected B2:C4", got)
	}
}

func TestMouseColumnHeaderSelects(t *testing.T) {
	a, s := newTestApp(t)
	a.HandleMouseEvent(s, tcell.NewEventMouse(18, 0, tcell.Button1, tcell.ModNone))
	a.HandleMouseEvent(s, tcell.NewEventMouse(18, 0, tcell.ButtonNone, tcell.ModNone))
	if got := a.Sheet.CurrentRange(); got != grid.NewRange(0, 1, 99, 1) {
		t.Errorf("header click = %v, expected all of column B", got)
	}
}

func TestMouseResizesColumn(t *testing.T) {
	a, s := newTestApp(t)
	// the last character of column A's header starts a resize
	a.HandleMouseEvent(s, tcell.NewEventMouse(15, 0, tcell.Button1, tcell.ModNone))
	a.HandleMouseEvent(s, tcell.NewEventMouse(20, 0, tcell.Button1, tcell.ModNone))
	a.Draw(s)
	if got := lineText(s, 11); !strings.Contains(got, "150px") {
		t.Errorf("status while dragging = %q", got)
	}
	a.HandleMouseEvent(s, tcell.NewEventMouse(20, 0, tcell.ButtonNone, tcell.ModNone))

	if got := a.Sheet.DimensionSize(tracks.Cols, 0); got != 150 {
		t.Errorf("col A width = %v, expected 150", got)
	}

	// column A now ends at x 210, so its edge is character 20
	a.HandleMouseEvent(s, tcell.NewEventMouse(20, 0, tcell.Button1, tcell.ModNone))
	a.HandleMouseEvent(s, tcell.NewEventMouse(20, 0, tcell.ButtonNone, tcell.ModNone))
	if got := a.Sheet.DimensionSize(tracks.Cols, 0); got != 60 {
		t.Errorf("release without movement = %v, expected the 60px minimum", got)
	}
}

func TestWheelAndEnsureVisible(t *testing.T) {
	a, s := newTestApp(t)
	a.HandleMouseEvent(s, tcell.NewEventMouse(10, 5, tcell.WheelDown, tcell.ModNone))
	if got := a.Sheet.BodyOffset(tracks.Rows); got != 75 {
		t.Errorf("body offset after wheel = %v, expected 75", got)
	}

	a.Sheet.SetAnchor(50, 0)
	a.EnsureCursorVisible(s)
	rect := a.Sheet.CellToPixel(50, 0)
	_, h := NewScreen(s, a.StatusLines, a.CellPadding).Size()
	if rect.Top < 25 || rect.Bottom() > h {
		t.Errorf("row 51 at %v..%v, outside 25..%v", rect.Top, rect.Bottom(), h)
	}

	a.Sheet.SetAnchor(0, 0)
	a.EnsureCursorVisible(s)
	if got := a.Sheet.BodyOffset(tracks.Rows); got != 0 {
		t.Errorf("body offset = %v, expected 0", got)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three\n\nfour", 8)
	want := []string{"one two", "three", "", "four"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText = %q, expected %q", got, want)
	}
	if got := wrapText("abcdefghij", 4); strings.Join(got, "|") != "abcd|efgh|ij" {
		t.Errorf("long word = %q", got)
	}
}

func TestWheelScrollSurvivesNextFrame(t *testing.T) {
	a, s := newTestApp(t)
	a.Frame(s)
	a.HandleMouseEvent(s, tcell.NewEventMouse(10, 5, tcell.WheelDown, tcell.ModNone))
	a.Frame(s)
	if got := a.Sheet.BodyOffset(tracks.Rows); got != 75 {
		t.Fatalf("body offset after a frame = %v, expected the wheel's 75", got)
	}

	// a key brings the cursor back into view
	a.HandleKeyEvent(s, key(tcell.KeyDown, tcell.ModNone))
	a.Frame(s)
	if got := a.Sheet.BodyOffset(tracks.Rows); got != 25 {
		t.Errorf("body offset after Down = %v, expected 25", got)
	}
}

func TestStyleCommands(t *testing.T) {
	a, _ := newTestApp(t)
	a.Sheet.SetCellText(0, 0, "x")
	a.Sheet.ExtendTo(0, 1)
	a.ExecuteCommand("bold")
	a.ExecuteCommand("align right")
	a.ExecuteCommand("bg #ffff00")

	styles := a.Sheet.Styles()
	for _, col := range []int{0, 1} {
		st := styles.Get(a.Sheet.Cell(0, col).Style)
		if !st.Font.Bold || st.Align != render.AlignRight || st.Background != "#ffff00" {
			t.Errorf("cell (0, %d) style = %+v", col, st)
		}
	}
	if styles.Len() != 3 {
		t.Errorf("style table has %d entries, expected one per step", styles.Len())
	}

	a.Status = ""
	a.ExecuteCommand("align sideways")
	if !strings.Contains(a.Status, "sideways") {
		t.Errorf("status = %q", a.Status)
	}
}

func TestMoveCommand(t *testing.T) {
	a, _ := newTestApp(t)
	a.ExecuteCommand("move row-last")
	if r, c := a.Sheet.Anchor(); r != 0 || c != 25 {
		t.Errorf("move row-last -> (%d, %d)", r, c)
	}
	a.ExecuteCommand("move down extend")
	if got := a.Sheet.CurrentRange(); got != grid.NewRange(0, 25, 1, 25) {
		t.Errorf("move down extend -> %v", got)
	}
	a.Status = ""
	a.ExecuteCommand("move sideways")
	if a.Status == "" {
		t.Errorf("unknown direction accepted")
	}
}
