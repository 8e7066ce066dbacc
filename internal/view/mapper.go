package view

import (
	"gridview/internal/grid"
	"gridview/internal/tracks"
)

// Rect is a pixel rectangle in widget space.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Header is the fixed label band: row numbers on the left, column letters on
// top.
type Header struct {
	Width, Height float64
}

// Hit is the result of a pixel lookup. Row or Col is -1 when the point lies
// in the header band of that axis.
type Hit struct {
	Row, Col int
	Rect     Rect
}

// Track is one laid-out row or column in widget space.
type Track struct {
	Index int
	Pos   float64
	Size  float64
}

// Resolver finds the merge span covering an address.
type Resolver interface {
	ResolveAnchor(row, col int) (grid.Range, bool)
}

// Mapper converts between widget pixels and cell addresses. Frozen tracks
// ignore scroll on their axis; hidden rows take no space.
type Mapper struct {
	port   *Viewport
	merges Resolver
	header Header
}

func NewMapper(port *Viewport, merges Resolver, header Header) *Mapper {
	return &Mapper{port: port, merges: merges, header: header}
}

func (m *Mapper) Header() Header { return m.header }

// ColLeft is the widget x of column c's left edge.
func (m *Mapper) ColLeft(c int) float64 {
	return m.pos(tracks.Cols, c) + m.header.Width
}

// RowTop is the widget y of row r's top edge.
func (m *Mapper) RowTop(r int) float64 {
	return m.pos(tracks.Rows, r) + m.header.Height
}

func (m *Mapper) pos(axis tracks.Axis, i int) float64 {
	p := m.port.Set(axis).Sum(0, i, m.port.Exclude(axis))
	if i >= m.port.FreezeCount(axis) {
		p -= m.port.Offset(axis)
	}
	return p
}

func (m *Mapper) size(axis tracks.Axis, i int) float64 {
	if m.port.IsHidden(axis, i) {
		return 0
	}
	return m.port.Set(axis).Size(i)
}

// CellToPixel returns the rectangle of (row, col). A merge anchor's rectangle
// covers the whole span.
func (m *Mapper) CellToPixel(row, col int) Rect {
	r := Rect{
		Left:   m.ColLeft(col),
		Top:    m.RowTop(row),
		Width:  m.size(tracks.Cols, col),
		Height: m.size(tracks.Rows, row),
	}
	if m.merges == nil {
		return r
	}
	if span, ok := m.merges.ResolveAnchor(row, col); ok && span.StartRow == row && span.StartCol == col {
		r.Width = m.port.Cols().Sum(col, span.EndCol+1, nil)
		r.Height = m.port.Rows().Sum(row, span.EndRow+1, m.port.Hidden())
	}
	return r
}

// PixelToCell finds the cell under widget point (x, y). Points past the last
// track saturate to it. Inside a merge the anchor and its full rectangle are
// returned.
func (m *Mapper) PixelToCell(x, y float64) Hit {
	row := m.indexAt(tracks.Rows, y-m.header.Height)
	col := m.indexAt(tracks.Cols, x-m.header.Width)
	if y < m.header.Height {
		row = -1
	}
	if x < m.header.Width {
		col = -1
	}

	switch {
	case row >= 0 && col >= 0:
		if m.merges != nil {
			if span, ok := m.merges.ResolveAnchor(row, col); ok {
				row, col = span.StartRow, span.StartCol
			}
		}
		return Hit{Row: row, Col: col, Rect: m.CellToPixel(row, col)}
	case row < 0 && col < 0:
		return Hit{Row: -1, Col: -1, Rect: Rect{Width: m.header.Width, Height: m.header.Height}}
	case row < 0:
		return Hit{Row: -1, Col: col, Rect: Rect{
			Left:   m.ColLeft(col),
			Width:  m.size(tracks.Cols, col),
			Height: m.header.Height + m.port.Rows().Sum(0, m.port.Rows().Count(), m.port.Hidden()),
		}}
	default:
		return Hit{Row: row, Col: -1, Rect: Rect{
			Top:    m.RowTop(row),
			Width:  m.header.Width + m.port.Cols().Total(),
			Height: m.size(tracks.Rows, row),
		}}
	}
}

// indexAt scans from the frozen origin or the cached scroll start for the
// track containing data-space position p.
func (m *Mapper) indexAt(axis tracks.Axis, p float64) int {
	set := m.port.Set(axis)
	ex := m.port.Exclude(axis)
	frozen := m.port.FreezeCount(axis)

	i, pos := 0, 0.0
	if frozen == 0 || p >= m.port.freezeTotal(axis) {
		i = m.port.start(axis)
		pos = m.port.freezeTotal(axis) + m.port.StartOffset(axis) - m.port.Offset(axis)
	}

	last := -1
	for ; i < set.Count(); i++ {
		if ex != nil && ex.Has(i) {
			continue
		}
		size := set.Size(i)
		if p < pos+size {
			return i
		}
		last = i
		pos += size
	}
	return last
}

// Tracks lays out tracks lo..hi of axis in widget space, skipping hidden rows.
func (m *Mapper) Tracks(axis tracks.Axis, lo, hi int) []Track {
	if hi < lo {
		return nil
	}
	set := m.port.Set(axis)
	ex := m.port.Exclude(axis)

	pos := m.ColLeft(lo)
	if axis == tracks.Rows {
		pos = m.RowTop(lo)
	}
	out := make([]Track, 0, hi-lo+1)
	for i := lo; i <= hi && i < set.Count(); i++ {
		if ex != nil && ex.Has(i) {
			continue
		}
		size := set.Size(i)
		out = append(out, Track{Index: i, Pos: pos, Size: size})
		pos += size
	}
	return out
}
