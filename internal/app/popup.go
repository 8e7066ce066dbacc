package app

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const maxPopupInput = 4096

// PopupInput shows a modal one-line input box over the sheet. It returns the
// entered text and true on Enter, or "" and false on Esc.
func (a *App) PopupInput(s tcell.Screen, prompt, initial string) (string, bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorReset)

	promptRunes := []rune(prompt)
	buf := []rune(initial)
	pos := len(buf)

	w, h := s.Size()
	contentW := min(max(20, len(promptRunes)+len(buf)+2), w-4)
	boxW := contentW + 4
	boxH := 3
	left := (w - boxW) / 2
	top := (h - boxH) / 2

	drawBox := func() {
		drawFrame(s, left, top, boxW, boxH, style)

		x := left + 2
		y := top + 1
		for i, r := range promptRunes {
			s.SetContent(x+i, y, r, nil, style)
		}
		x += len(promptRunes) + 1

		maxField := max(boxW-4-len(promptRunes), 1)
		display := buf
		start := 0
		if len(display) > maxField {
			if pos > maxField {
				start = pos - maxField
			}
			display = display[start:min(start+maxField, len(display))]
		}
		for i := 0; i < maxField; i++ {
			ch := ' '
			if i < len(display) {
				ch = display[i]
			}
			s.SetContent(x+i, y, ch, nil, style)
		}
		s.ShowCursor(max(x+pos-start, left+1), y)
	}

	redraw := func() {
		a.Draw(s)
		drawBox()
		s.Show()
	}
	redraw()

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return "", false
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEsc:
				s.HideCursor()
				a.Draw(s)
				return "", false
			case tcell.KeyEnter:
				s.HideCursor()
				a.Draw(s)
				return string(buf), true
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if pos > 0 {
					buf = append(buf[:pos-1], buf[pos:]...)
					pos--
				}
			case tcell.KeyDelete:
				if pos < len(buf) {
					buf = append(buf[:pos], buf[pos+1:]...)
				}
			case tcell.KeyLeft:
				pos = max(pos-1, 0)
			case tcell.KeyRight:
				pos = min(pos+1, len(buf))
			case tcell.KeyHome:
				pos = 0
			case tcell.KeyEnd:
				pos = len(buf)
			case tcell.KeyRune:
				if utf8.RuneCountInString(string(buf)) < maxPopupInput {
					buf = append(buf[:pos], append([]rune{ev.Rune()}, buf[pos:]...)...)
					pos++
				}
			}
			redraw()
		case *tcell.EventResize:
			s.Sync()
			w, h = s.Size()
			boxW = min(boxW, w-4)
			left = (w - boxW) / 2
			top = (h - boxH) / 2
			redraw()
		}
	}
}

// drawFrame clears a box and draws a single-line border around it.
func drawFrame(s tcell.Screen, left, top, boxW, boxH int, style tcell.Style) {
	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
	for x := left; x < left+boxW; x++ {
		s.SetContent(x, top, tcell.RuneHLine, nil, style)
		s.SetContent(x, top+boxH-1, tcell.RuneHLine, nil, style)
	}
	for y := top; y < top+boxH; y++ {
		s.SetContent(left, y, tcell.RuneVLine, nil, style)
		s.SetContent(left+boxW-1, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.SetContent(left+boxW-1, top, tcell.RuneURCorner, nil, style)
	s.SetContent(left, top+boxH-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(left+boxW-1, top+boxH-1, tcell.RuneLRCorner, nil, style)
}

// drawHelpPopup draws text wrapped into a centered frame.
func (a *App) drawHelpPopup(s tcell.Screen, text string) {
	w, h := s.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorReset)

	boxW := min(60, w-4)
	if boxW < 10 {
		return
	}
	lines := wrapText(text, boxW-4)
	boxH := min(len(lines)+2, h-2)
	left := (w - boxW) / 2
	top := max((h-boxH)/2, 0)

	drawFrame(s, left, top, boxW, boxH, style)
	for i := 0; i < boxH-2 && i < len(lines); i++ {
		x := left + 2
		for _, r := range lines[i] {
			s.SetContent(x, top+1+i, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}
}

// wrapText splits text on newlines and wraps each paragraph at width
// display columns, breaking on spaces where it can.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					break
				}
				out = append(out, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
