// Package render paints the sheet onto a Surface. Every call repaints the
// whole visible area in a fixed layer order.
package render

import "gridview/internal/view"

// Stroke is a line color and width in pixels. A zero width draws nothing.
type Stroke struct {
	Color string
	Width float64
}

// Surface is a pixel drawing target. Colors are "#rrggbb" strings.
type Surface interface {
	Size() (width, height float64)
	Clear(width, height float64)
	ClearRect(r view.Rect)
	// Clip restricts later drawing to r until Unclip.
	Clip(r view.Rect)
	Unclip()
	FillRect(r view.Rect, color string)
	Line(x1, y1, x2, y2 float64, s Stroke)
	// Text draws s inside box honoring the style's alignment, color and font.
	Text(s string, box view.Rect, st Style)
	// Dropdown draws a filter indicator at the right edge of box.
	Dropdown(box view.Rect)
}
