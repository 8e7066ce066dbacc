package view

import (
	"gridview/internal/grid"
	"gridview/internal/tracks"
)

// Range is the rectangular index window to draw plus its pixel extent.
type Range struct {
	grid.Range
	Width, Height float64
}

// Calculator derives visible ranges from a Viewport.
type Calculator struct {
	port *Viewport
}

func NewCalculator(port *Viewport) *Calculator {
	return &Calculator{port: port}
}

// Visible returns the scrollable body range for an available extent of
// width x height pixels. Tracks are taken from the start index until their
// running size reaches the extent; the end saturates at count-1.
func (c *Calculator) Visible(width, height float64) Range {
	sc := c.port.Scroll()
	fz := c.port.Freeze()

	startRow := fz.Rows
	if sc.Y > 0 {
		startRow = sc.Row
	}
	startCol := fz.Cols
	if sc.X > 0 {
		startCol = sc.Col
	}

	firstRow, endRow, h := accumulate(c.port.Rows(), startRow, height, c.port.Hidden())
	firstCol, endCol, w := accumulate(c.port.Cols(), startCol, width, nil)
	return Range{
		Range:  grid.Range{StartRow: firstRow, StartCol: firstCol, EndRow: endRow, EndCol: endCol},
		Width:  w,
		Height: h,
	}
}

// Span builds the range of rows [rowLo, rowHi] and cols [colLo, colHi] with
// its pixel extent, hidden rows excluded.
func (c *Calculator) Span(rowLo, rowHi, colLo, colHi int) Range {
	return Range{
		Range:  grid.Range{StartRow: rowLo, StartCol: colLo, EndRow: rowHi, EndCol: colHi},
		Width:  c.port.Cols().Sum(colLo, colHi+1, nil),
		Height: c.port.Rows().Sum(rowLo, rowHi+1, c.port.Hidden()),
	}
}

// FrozenTop is the band of frozen rows over the body's columns.
func (c *Calculator) FrozenTop(body Range) Range {
	return c.Span(0, c.port.Freeze().Rows-1, body.StartCol, body.EndCol)
}

// FrozenLeft is the band of frozen columns beside the body's rows.
func (c *Calculator) FrozenLeft(body Range) Range {
	return c.Span(body.StartRow, body.EndRow, 0, c.port.Freeze().Cols-1)
}

// FrozenCorner is the intersection of frozen rows and frozen columns.
func (c *Calculator) FrozenCorner() Range {
	fz := c.port.Freeze()
	return c.Span(0, fz.Rows-1, 0, fz.Cols-1)
}

func accumulate(set *tracks.Set, start int, extent float64, ex tracks.Exclude) (first, end int, sum float64) {
	first, end = -1, start-1
	for i := start; i < set.Count(); i++ {
		if ex != nil && ex.Has(i) {
			continue
		}
		if first < 0 {
			first = i
		}
		sum += set.Size(i)
		end = i
		if sum >= extent {
			break
		}
	}
	if first < 0 {
		first = start
	}
	return first, end, sum
}
