package render

import (
	"strconv"

	"gridview/internal/grid"
	"gridview/internal/merge"
	"gridview/internal/tracks"
	"gridview/internal/view"
)

const (
	HeaderBackground = "#f4f5f8"
	HeaderSelected   = "#e1e8f5"
	HeaderText       = "#585757"
	HeaderLine       = "#d0d0d0"
	GridColor        = "#e6e6e6"
	FreezeSeamColor  = "#4b89ff"
)

// FilterHeader exposes the auto filter's header row.
type FilterHeader interface {
	Active() bool
	HeaderRange() (grid.Range, bool)
}

// RangeSource yields the current selection.
type RangeSource interface {
	Range() grid.Range
}

// Pipeline draws one sheet. Styles, Text, Filter and Selection are optional.
type Pipeline struct {
	port   *view.Viewport
	calc   *view.Calculator
	mapper *view.Mapper
	cells  *grid.Store
	merges *merge.Registry

	Styles    StyleResolver
	Text      TextFormatter
	Filter    FilterHeader
	Selection RangeSource
	ShowGrid  bool
}

func NewPipeline(port *view.Viewport, calc *view.Calculator, mapper *view.Mapper, cells *grid.Store, merges *merge.Registry) *Pipeline {
	return &Pipeline{
		port:     port,
		calc:     calc,
		mapper:   mapper,
		cells:    cells,
		merges:   merges,
		Text:     PlainText{},
		ShowGrid: true,
	}
}

// Render repaints the surface and returns the body range it drew.
func (p *Pipeline) Render(s Surface) view.Range {
	w, h := s.Size()
	s.Clear(w, h)

	hd := p.mapper.Header()
	fw, fh := p.port.FreezeWidth(), p.port.FreezeHeight()
	// the first body track may be partly scrolled out; its hidden part is
	// extra extent to fill at the far edge
	cut := func(axis tracks.Axis) float64 {
		return max(p.port.Offset(axis)-p.port.StartOffset(axis), 0)
	}
	body := p.calc.Visible(max(w-hd.Width-fw, 0)+cut(tracks.Cols), max(h-hd.Height-fh, 0)+cut(tracks.Rows))
	p.pass(s, body, view.Rect{
		Left:   hd.Width + fw,
		Top:    hd.Height + fh,
		Width:  max(w-hd.Width-fw, 0),
		Height: max(h-hd.Height-fh, 0),
	})
	p.corner(s)

	fz := p.port.Freeze()
	if fz.Rows == 0 && fz.Cols == 0 {
		return body
	}
	if fz.Rows > 0 {
		p.band(s, p.calc.FrozenTop(body), view.Rect{Left: hd.Width + fw, Top: hd.Height, Width: max(w-hd.Width-fw, 0), Height: fh})
	}
	if fz.Cols > 0 {
		p.band(s, p.calc.FrozenLeft(body), view.Rect{Left: hd.Width, Top: hd.Height + fh, Width: fw, Height: max(h-hd.Height-fh, 0)})
	}
	if fz.Rows > 0 && fz.Cols > 0 {
		p.band(s, p.calc.FrozenCorner(), view.Rect{Left: hd.Width, Top: hd.Height, Width: fw, Height: fh})
	}

	seam := Stroke{Color: FreezeSeamColor, Width: 2}
	if fz.Rows > 0 {
		y := hd.Height + fh
		s.Line(hd.Width, y, w, y, seam)
	}
	if fz.Cols > 0 {
		x := hd.Width + fw
		s.Line(x, hd.Height, x, h, seam)
	}
	return body
}

// band repaints one frozen region over whatever the body pass left there.
func (p *Pipeline) band(s Surface, rng view.Range, region view.Rect) {
	if region.Width <= 0 || region.Height <= 0 {
		return
	}
	s.Clip(region)
	s.ClearRect(region)
	s.Unclip()
	p.pass(s, rng, region)
}

// pass draws grid lines, cells, merges, filter glyphs and labels of rng,
// clipped to region.
func (p *Pipeline) pass(s Surface, rng view.Range, region view.Rect) {
	if rng.EndRow < rng.StartRow || rng.EndCol < rng.StartCol {
		p.labels(s, rng, region)
		return
	}
	rows := p.mapper.Tracks(tracks.Rows, rng.StartRow, rng.EndRow)
	cols := p.mapper.Tracks(tracks.Cols, rng.StartCol, rng.EndCol)

	s.Clip(region)
	if p.ShowGrid {
		p.gridLines(s, rows, cols)
	}
	p.drawCells(s, rows, cols)
	p.drawMerges(s, rng.Range)
	p.filterGlyphs(s, rng.Range)
	s.Unclip()

	p.labels(s, rng, region)
}

func (p *Pipeline) gridLines(s Surface, rows, cols []view.Track) {
	if len(rows) == 0 || len(cols) == 0 {
		return
	}
	st := Stroke{Color: GridColor, Width: 1}
	left, top := cols[0].Pos, rows[0].Pos
	right := cols[len(cols)-1].Pos + cols[len(cols)-1].Size
	bottom := rows[len(rows)-1].Pos + rows[len(rows)-1].Size
	for _, r := range rows {
		y := r.Pos + r.Size
		s.Line(left, y, right, y, st)
	}
	for _, c := range cols {
		x := c.Pos + c.Size
		s.Line(x, top, x, bottom, st)
	}
}

func (p *Pipeline) drawCells(s Surface, rows, cols []view.Track) {
	for _, r := range rows {
		for _, c := range cols {
			cell, ok := p.cells.Get(r.Index, c.Index)
			if !ok {
				continue
			}
			if _, merged := p.merges.ResolveAnchor(r.Index, c.Index); merged {
				continue
			}
			box := view.Rect{Left: c.Pos, Top: r.Pos, Width: c.Size, Height: r.Size}
			p.drawCell(s, r.Index, c.Index, cell, box)
		}
	}
}

// drawMerges paints each span touching rng once, over its full rectangle.
// A span whose anchor row is hidden is skipped.
func (p *Pipeline) drawMerges(s Surface, rng grid.Range) {
	for span := range p.merges.Intersecting(rng) {
		if p.port.IsHidden(tracks.Rows, span.StartRow) {
			continue
		}
		box := p.mapper.CellToPixel(span.StartRow, span.StartCol)
		if box.Width <= 0 || box.Height <= 0 {
			continue
		}
		s.ClearRect(box)
		if p.ShowGrid {
			st := Stroke{Color: GridColor, Width: 1}
			s.Line(box.Right(), box.Top, box.Right(), box.Bottom(), st)
			s.Line(box.Left, box.Bottom(), box.Right(), box.Bottom(), st)
		}
		p.drawCell(s, span.StartRow, span.StartCol, p.cells.Cell(span.StartRow, span.StartCol), box)
	}
}

func (p *Pipeline) drawCell(s Surface, row, col int, cell grid.Cell, box view.Rect) {
	st := DefaultStyle()
	if p.Styles != nil {
		st = p.Styles.StyleFor(row, col)
	}
	if st.Background != "" {
		s.FillRect(box, st.Background)
	}
	b := st.Border
	if b.Top.Width > 0 {
		s.Line(box.Left, box.Top, box.Right(), box.Top, b.Top)
	}
	if b.Right.Width > 0 {
		s.Line(box.Right(), box.Top, box.Right(), box.Bottom(), b.Right)
	}
	if b.Bottom.Width > 0 {
		s.Line(box.Left, box.Bottom(), box.Right(), box.Bottom(), b.Bottom)
	}
	if b.Left.Width > 0 {
		s.Line(box.Left, box.Top, box.Left, box.Bottom(), b.Left)
	}
	text := cell.Text
	if p.Text != nil {
		text = p.Text.RenderText(cell)
	}
	if text != "" {
		s.Text(text, box, st)
	}
}

func (p *Pipeline) filterGlyphs(s Surface, rng grid.Range) {
	if p.Filter == nil || !p.Filter.Active() {
		return
	}
	hr, ok := p.Filter.HeaderRange()
	if !ok || !hr.Intersects(rng) || p.port.IsHidden(tracks.Rows, hr.StartRow) {
		return
	}
	for c := max(hr.StartCol, rng.StartCol); c <= min(hr.EndCol, rng.EndCol); c++ {
		s.Dropdown(p.mapper.CellToPixel(hr.StartRow, c))
	}
}

// labels draws the column letters above region and the row numbers beside
// it, highlighting tracks covered by the selection.
func (p *Pipeline) labels(s Surface, rng view.Range, region view.Rect) {
	hd := p.mapper.Header()
	var sel grid.Range
	hasSel := false
	if p.Selection != nil {
		sel, hasSel = p.Selection.Range(), true
	}
	label := Style{Color: HeaderText, Align: AlignCenter, Font: Font{Name: "Arial", Size: 10}}
	line := Stroke{Color: HeaderLine, Width: 1}

	top := view.Rect{Left: region.Left, Width: region.Width, Height: hd.Height}
	if top.Width > 0 && hd.Height > 0 {
		s.Clip(top)
		s.FillRect(top, HeaderBackground)
		for _, c := range p.mapper.Tracks(tracks.Cols, rng.StartCol, rng.EndCol) {
			box := view.Rect{Left: c.Pos, Width: c.Size, Height: hd.Height}
			if hasSel && c.Index >= sel.StartCol && c.Index <= sel.EndCol {
				s.FillRect(box, HeaderSelected)
			}
			s.Text(grid.ColToName(c.Index), box, label)
			s.Line(box.Right(), 0, box.Right(), hd.Height, line)
		}
		s.Line(top.Left, hd.Height, top.Right(), hd.Height, line)
		s.Unclip()
	}

	side := view.Rect{Top: region.Top, Width: hd.Width, Height: region.Height}
	if side.Height > 0 && hd.Width > 0 {
		s.Clip(side)
		s.FillRect(side, HeaderBackground)
		for _, r := range p.mapper.Tracks(tracks.Rows, rng.StartRow, rng.EndRow) {
			box := view.Rect{Top: r.Pos, Width: hd.Width, Height: r.Size}
			if hasSel && r.Index >= sel.StartRow && r.Index <= sel.EndRow {
				s.FillRect(box, HeaderSelected)
			}
			s.Text(strconv.Itoa(r.Index+1), box, label)
			s.Line(0, box.Bottom(), hd.Width, box.Bottom(), line)
		}
		s.Line(hd.Width, side.Top, hd.Width, side.Bottom(), line)
		s.Unclip()
	}
}

// corner covers whatever scrolled under the top-left label cell.
func (p *Pipeline) corner(s Surface) {
	hd := p.mapper.Header()
	box := view.Rect{Width: hd.Width, Height: hd.Height}
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	s.ClearRect(box)
	s.FillRect(box, HeaderBackground)
	s.Line(box.Right(), 0, box.Right(), box.Bottom(), Stroke{Color: HeaderLine, Width: 1})
	s.Line(0, box.Bottom(), box.Right(), box.Bottom(), Stroke{Color: HeaderLine, Width: 1})
}
