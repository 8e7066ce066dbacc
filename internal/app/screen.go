package app

import (
	"math"

	"gridview/internal/render"
	"gridview/internal/view"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Pixel size of one terminal cell. A default 100x25 sheet cell is ten
// characters wide and one line high.
const (
	CellW = 10.0
	CellH = 25.0
)

// Screen is a render.Surface over the grid area of a tcell screen: every
// line except the bottom StatusLines.
type Screen struct {
	s           tcell.Screen
	statusLines int
	padding     int

	clip    [4]int // x0, y0, x1, y1 in characters
	clipped bool
}

func NewScreen(s tcell.Screen, statusLines, padding int) *Screen {
	return &Screen{s: s, statusLines: statusLines, padding: padding}
}

func (sc *Screen) chars() (w, h int) {
	w, h = sc.s.Size()
	return w, max(h-sc.statusLines, 0)
}

func (sc *Screen) Size() (float64, float64) {
	w, h := sc.chars()
	return float64(w) * CellW, float64(h) * CellH
}

func pxCol(px float64) int  { return int(math.Floor(px / CellW)) }
func pxLine(px float64) int { return int(math.Floor(px / CellH)) }

// span converts a pixel rectangle to the characters it covers, end exclusive.
func span(r view.Rect) (x0, y0, x1, y1 int) {
	return pxCol(r.Left), pxLine(r.Top), pxCol(r.Right()), pxLine(r.Bottom())
}

func (sc *Screen) visible(x, y int) bool {
	w, h := sc.chars()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	if sc.clipped {
		return x >= sc.clip[0] && y >= sc.clip[1] && x < sc.clip[2] && y < sc.clip[3]
	}
	return true
}

func (sc *Screen) put(x, y int, r rune, st tcell.Style) {
	if sc.visible(x, y) {
		sc.s.SetContent(x, y, r, nil, st)
	}
}

// restyle changes the style of (x, y) and keeps its rune.
func (sc *Screen) restyle(x, y int, fn func(tcell.Style) tcell.Style) {
	if !sc.visible(x, y) {
		return
	}
	r, comb, st, _ := sc.s.GetContent(x, y)
	sc.s.SetContent(x, y, r, comb, fn(st))
}

func (sc *Screen) Clear(width, height float64) {
	sc.clipped = false
	sc.ClearRect(view.Rect{Width: width, Height: height})
}

func (sc *Screen) ClearRect(r view.Rect) {
	x0, y0, x1, y1 := span(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sc.put(x, y, ' ', tcell.StyleDefault)
		}
	}
}

func (sc *Screen) Clip(r view.Rect) {
	x0, y0, x1, y1 := span(r)
	sc.clip = [4]int{x0, y0, x1, y1}
	sc.clipped = true
}

func (sc *Screen) Unclip() { sc.clipped = false }

func (sc *Screen) FillRect(r view.Rect, color string) {
	bg := tcell.StyleDefault.Background(tcell.GetColor(color))
	x0, y0, x1, y1 := span(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sc.put(x, y, ' ', bg)
		}
	}
}

// Tint changes the background under r and keeps the text.
func (sc *Screen) Tint(r view.Rect, color string) {
	c := tcell.GetColor(color)
	x0, y0, x1, y1 := span(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sc.restyle(x, y, func(st tcell.Style) tcell.Style { return st.Background(c) })
		}
	}
}

// Line draws vertical lines as box runes in the last character left of x and
// horizontal lines as an underline on the line above y.
func (sc *Screen) Line(x1, y1, x2, y2 float64, s render.Stroke) {
	if s.Width <= 0 {
		return
	}
	fg := tcell.GetColor(s.Color)
	switch {
	case x1 == x2:
		x := pxCol(x1) - 1
		r := tcell.RuneVLine
		if s.Width > 1 {
			r = '┃'
		}
		for y := pxLine(min(y1, y2)); y < pxLine(max(y1, y2)); y++ {
			if !sc.visible(x, y) {
				continue
			}
			_, _, st, _ := sc.s.GetContent(x, y)
			sc.s.SetContent(x, y, r, nil, st.Foreground(fg))
		}
	case y1 == y2:
		y := pxLine(y1) - 1
		for x := pxCol(min(x1, x2)); x < pxCol(max(x1, x2)); x++ {
			sc.restyle(x, y, func(st tcell.Style) tcell.Style { return st.Underline(true) })
		}
	}
}

// Text writes s on the middle line of box, aligned and cut to the box width
// less the padding on both sides.
func (sc *Screen) Text(s string, box view.Rect, st render.Style) {
	x0, y0, x1, y1 := span(box)
	if y1 <= y0 {
		y1 = y0 + 1
	}
	inner := x1 - x0 - 2*sc.padding
	if inner <= 0 {
		return
	}
	s = runewidth.Truncate(s, inner, "…")
	w := runewidth.StringWidth(s)

	x := x0 + sc.padding
	switch st.Align {
	case render.AlignCenter:
		x += (inner - w) / 2
	case render.AlignRight:
		x += inner - w
	}
	y := y0 + (y1-y0-1)/2
	switch st.VAlign {
	case render.VAlignTop:
		y = y0
	case render.VAlignBottom:
		y = y1 - 1
	}

	fg := tcell.GetColor(st.Color)
	for _, r := range s {
		if sc.visible(x, y) {
			_, _, cur, _ := sc.s.GetContent(x, y)
			out := cur.Foreground(fg).Bold(st.Font.Bold).Italic(st.Font.Italic).StrikeThrough(st.Strike)
			if st.Underline {
				out = out.Underline(true)
			}
			sc.s.SetContent(x, y, r, nil, out)
		}
		x += max(runewidth.RuneWidth(r), 1)
	}
}

// Dropdown marks the last character of box.
func (sc *Screen) Dropdown(box view.Rect) {
	x0, y0, x1, y1 := span(box)
	if x1 <= x0 {
		return
	}
	y := y0 + max(y1-y0-1, 0)/2
	if sc.visible(x1-1, y) {
		_, _, st, _ := sc.s.GetContent(x1-1, y)
		sc.s.SetContent(x1-1, y, '▾', nil, st.Foreground(tcell.GetColor(render.HeaderText)))
	}
}
