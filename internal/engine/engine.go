// Package engine wires tracks, cells, merges, viewport, selection and the
// render pipeline into one Sheet. Interactive layers mutate a sheet only
// through its methods.
package engine

import (
	"io"

	"gridview/internal/filter"
	"gridview/internal/grid"
	"gridview/internal/merge"
	"gridview/internal/render"
	"gridview/internal/resize"
	"gridview/internal/selection"
	"gridview/internal/storage"
	"gridview/internal/tracks"
	"gridview/internal/view"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

type Sheet struct {
	settings Settings

	rows, cols *tracks.Set
	cells      *grid.Store
	merges     *merge.Registry
	styles     *render.StyleTable
	filter     *filter.AutoFilter

	// hidden is the union of manually hidden rows and rows the filter rejects.
	manual tracks.IndexSet
	hidden tracks.IndexSet

	port     *view.Viewport
	calc     *view.Calculator
	mapper   *view.Mapper
	sel      *selection.Model
	pipe     *render.Pipeline
	resizers [2]*resize.Resizer

	logger *ll.Logger
}

func New(settings Settings) *Sheet {
	settings = settings.normalize()
	s := &Sheet{
		settings: settings,
		rows:     tracks.New(tracks.Rows, settings.RowCount, settings.RowHeight, settings.MinRowHeight),
		cols:     tracks.New(tracks.Cols, settings.ColCount, settings.ColWidth, settings.MinColWidth),
		cells:    grid.NewStore(),
		merges:   merge.NewRegistry(),
		styles:   render.NewStyleTable(),
		filter:   filter.New(),
		manual:   tracks.IndexSet{},
		hidden:   tracks.IndexSet{},
		logger:   ll.New("sheet").Handler(lh.NewTextHandler(io.Discard)),
	}
	s.logger.Disable()

	s.port = view.NewViewport(s.rows, s.cols)
	s.port.SetHidden(s.hidden)
	s.calc = view.NewCalculator(s.port)
	s.rewire()
	s.sel.SetAnchor(0, 0)

	for _, axis := range []tracks.Axis{tracks.Rows, tracks.Cols} {
		r := resize.New(axis, s.set(axis), 0)
		r.OnFinish = s.resized
		s.resizers[axis] = r
	}
	return s
}

// Logger replaces the sheet's logger.
func (s *Sheet) Logger(logger *ll.Logger) {
	s.logger = logger.Namespace("sheet")
}

func (s *Sheet) Settings() Settings         { return s.settings }
func (s *Sheet) Styles() *render.StyleTable { return s.styles }
func (s *Sheet) Filter() *filter.AutoFilter { return s.filter }
func (s *Sheet) Header() view.Header        { return s.mapper.Header() }
func (s *Sheet) Scroll() view.Scroll        { return s.port.Scroll() }
func (s *Sheet) Freeze() view.Freeze        { return s.port.Freeze() }
func (s *Sheet) Merges() []grid.Range       { return s.merges.Spans() }

func (s *Sheet) set(axis tracks.Axis) *tracks.Set {
	if axis == tracks.Cols {
		return s.cols
	}
	return s.rows
}

// Count is the number of tracks on axis.
func (s *Sheet) Count(axis tracks.Axis) int { return s.set(axis).Count() }

// ---------------------------------------------------------------- dimensions

// SetDimensionSize overrides the size of one row or column. Sizes below the
// axis minimum are clamped.
func (s *Sheet) SetDimensionSize(axis tracks.Axis, i int, size float64) error {
	if err := s.set(axis).SetSize(i, size); err != nil {
		s.logger.Warnf("resize rejected: %v", err)
		return err
	}
	s.port.Resync()
	return nil
}

func (s *Sheet) DimensionSize(axis tracks.Axis, i int) float64 {
	return s.set(axis).Size(i)
}

// TotalSize is the laid-out length of axis; hidden rows take no space.
func (s *Sheet) TotalSize(axis tracks.Axis) float64 {
	set := s.set(axis)
	return set.Sum(0, set.Count(), s.port.Exclude(axis))
}

// IsHidden reports whether row is hidden, manually or by the filter.
func (s *Sheet) IsHidden(row int) bool { return s.hidden.Has(row) }

// Resizer returns the drag interaction of axis. Committed sizes resync the
// viewport.
func (s *Sheet) Resizer(axis tracks.Axis) *resize.Resizer { return s.resizers[axis] }

func (s *Sheet) resized(axis tracks.Axis, index int, size float64) {
	s.port.Resync()
	s.logger.Debugf("%s %d resized to %.0f", axis, index, size)
}

// ---------------------------------------------------------------- viewport

// SetScroll moves the scroll position of axis and returns the first scrolled
// track index.
func (s *Sheet) SetScroll(axis tracks.Axis, px float64) int {
	return s.port.SetScroll(axis, px)
}

func (s *Sheet) ScrollBy(axis tracks.Axis, delta float64) int {
	return s.port.ScrollBy(axis, delta)
}

// BodyOffset is how far the scrollable body is translated on axis.
func (s *Sheet) BodyOffset(axis tracks.Axis) float64 { return s.port.Offset(axis) }

// ScrollBody moves the body translation of axis by delta. Unlike ScrollBy it
// does not first have to pass the frozen tracks.
func (s *Sheet) ScrollBody(axis tracks.Axis, delta float64) int {
	off := max(s.port.Offset(axis)+delta, 0)
	if off == 0 {
		return s.port.SetScroll(axis, 0)
	}
	return s.port.SetScroll(axis, off+s.FreezeSize(axis))
}

// FreezeSize is the pixel length of the frozen tracks of axis.
func (s *Sheet) FreezeSize(axis tracks.Axis) float64 {
	if axis == tracks.Cols {
		return s.port.FreezeWidth()
	}
	return s.port.FreezeHeight()
}

// SetFreezeBoundary pins the first rows and cols against scrolling.
func (s *Sheet) SetFreezeBoundary(rows, cols int) error {
	if err := s.port.SetFreeze(rows, cols); err != nil {
		s.logger.Warnf("freeze rejected: %v", err)
		return err
	}
	return nil
}

// ComputeVisibleRange returns the tracks that fit a width x height extent
// from the current scroll position.
func (s *Sheet) ComputeVisibleRange(width, height float64) view.Range {
	return s.calc.Visible(width, height)
}

func (s *Sheet) CellToPixel(row, col int) view.Rect { return s.mapper.CellToPixel(row, col) }
func (s *Sheet) PixelToCell(x, y float64) view.Hit  { return s.mapper.PixelToCell(x, y) }

// Tracks lays out tracks lo..hi of axis in widget space.
func (s *Sheet) Tracks(axis tracks.Axis, lo, hi int) []view.Track {
	return s.mapper.Tracks(axis, lo, hi)
}

// Render repaints surface and returns the body range drawn.
func (s *Sheet) Render(surface render.Surface) view.Range {
	return s.pipe.Render(surface)
}

func (s *Sheet) SetShowGrid(show bool) {
	s.settings.ShowGrid = show
	s.pipe.ShowGrid = show
}

// ---------------------------------------------------------------- selection

func (s *Sheet) SetAnchor(row, col int) { s.sel.SetAnchor(row, col) }
func (s *Sheet) ExtendTo(row, col int)  { s.sel.ExtendTo(row, col) }

func (s *Sheet) MoveDirectional(dir selection.Direction, extend bool) {
	s.sel.MoveDirectional(dir, extend)
}

func (s *Sheet) CurrentRange() grid.Range { return s.sel.Range() }

// Active is the cell the last move or extension targeted.
func (s *Sheet) Active() (row, col int) { return s.sel.Active() }

// Anchor is where the current selection started.
func (s *Sheet) Anchor() (row, col int) { return s.sel.Anchor() }

// ---------------------------------------------------------------- cells

func (s *Sheet) Cell(row, col int) grid.Cell { return s.cells.Cell(row, col) }

// SetCellText replaces the text of a cell; empty text on an unstyled,
// unmerged cell removes it.
func (s *Sheet) SetCellText(row, col int, text string) {
	c := s.cells.Cell(row, col)
	c.Text = text
	if c == (grid.Cell{}) {
		s.cells.Delete(row, col)
	} else {
		s.cells.Set(row, col, c)
	}
	if s.filter.Active() && s.filter.Range().Contains(row, col) {
		s.refilter()
	}
}

// SetCellStyle assigns st to a cell through the style table.
func (s *Sheet) SetCellStyle(row, col int, st render.Style) {
	s.cells.SetStyle(row, col, s.styles.Add(st))
}


// ---------------------------------------------------------------- merges

// Merge joins rng into one span anchored at its top-left cell. Spans past the
// sheet are an *tracks.OutOfRangeError, spans crossing another merge a
// *merge.OverlapError; both leave the sheet unchanged.
func (s *Sheet) Merge(rng grid.Range) error {
	rng = rng.Normalize()
	if err := s.checkRange(rng); err != nil {
		s.logger.Warnf("merge %s rejected: %v", rng, err)
		return err
	}
	if err := s.merges.Add(rng); err != nil {
		s.logger.Warnf("merge %s rejected: %v", rng, err)
		return err
	}
	if rng.Multiple() {
		s.cells.SetMerge(rng.StartRow, rng.StartCol, rng.Span())
		s.logger.Debugf("merged %s", rng)
	}
	return nil
}

// Unmerge removes the span covering (row, col).
func (s *Sheet) Unmerge(row, col int) bool {
	span, ok := s.merges.Remove(row, col)
	if !ok {
		return false
	}
	s.cells.SetMerge(span.StartRow, span.StartCol, grid.Span{})
	s.logger.Debugf("unmerged %s", span)
	return true
}

func (s *Sheet) checkRange(rng grid.Range) error {
	if rng.StartRow < 0 || rng.EndRow >= s.rows.Count() {
		return &tracks.OutOfRangeError{Axis: tracks.Rows, Index: max(rng.EndRow, rng.StartRow), Count: s.rows.Count()}
	}
	if rng.StartCol < 0 || rng.EndCol >= s.cols.Count() {
		return &tracks.OutOfRangeError{Axis: tracks.Cols, Index: max(rng.EndCol, rng.StartCol), Count: s.cols.Count()}
	}
	return nil
}

// syncMerges rewrites the span metadata of anchor cells from the registry.
func (s *Sheet) syncMerges() {
	var stale [][2]int
	s.cells.Each(func(row, col int, c grid.Cell) {
		if !c.Merge.IsZero() {
			stale = append(stale, [2]int{row, col})
		}
	})
	for _, rc := range stale {
		s.cells.SetMerge(rc[0], rc[1], grid.Span{})
	}
	for _, span := range s.merges.Spans() {
		s.cells.SetMerge(span.StartRow, span.StartCol, span.Span())
	}
}

// ---------------------------------------------------------------- hidden rows

// SetHiddenRows replaces the manually hidden rows.
func (s *Sheet) SetHiddenRows(rows ...int) {
	s.manual = tracks.IndexSet{}
	for _, r := range rows {
		if r >= 0 && r < s.rows.Count() {
			s.manual.Add(r)
		}
	}
	s.refilter()
}

// SetFilter activates the auto filter over ref, keeping column filters.
func (s *Sheet) SetFilter(ref grid.Range) error {
	ref = ref.Normalize()
	if err := s.checkRange(ref); err != nil {
		return err
	}
	s.filter.SetRef(ref)
	s.refilter()
	return nil
}

// AddFilter restricts column col of the filter range to values.
func (s *Sheet) AddFilter(col int, op filter.Operator, values []string) {
	s.filter.AddFilter(col, op, values)
	s.refilter()
}

func (s *Sheet) ClearFilter() {
	s.filter.Clear()
	s.refilter()
}

// refilter recomputes the hidden set in place so the viewport and selection
// keep referring to it.
func (s *Sheet) refilter() {
	for r := range s.hidden {
		delete(s.hidden, r)
	}
	for r := range s.manual {
		s.hidden.Add(r)
	}
	for r := range s.filter.Hidden(s.cells) {
		s.hidden.Add(r)
	}
	s.port.Resync()
	s.logger.Debugf("hidden rows: %v", s.hidden.Sorted())
}

// ---------------------------------------------------------------- structure

func (s *Sheet) InsertRows(at, n int) {
	if n <= 0 || at < 0 || at > s.rows.Count() {
		return
	}
	s.rows.Insert(at, n)
	s.cells.InsertRows(at, n)
	s.merges.Insert(tracks.Rows, at, n)
	s.manual = shift(s.manual, at, n)
	s.restructured()
}

func (s *Sheet) DeleteRows(lo, hi int) {
	lo, hi = max(lo, 0), min(hi, s.rows.Count()-1)
	if hi < lo {
		return
	}
	s.rows.Delete(lo, hi)
	s.cells.DeleteRows(lo, hi)
	s.merges.Delete(tracks.Rows, lo, hi)
	s.manual = drop(s.manual, lo, hi)
	s.restructured()
}

func (s *Sheet) InsertCols(at, n int) {
	if n <= 0 || at < 0 || at > s.cols.Count() {
		return
	}
	s.cols.Insert(at, n)
	s.cells.InsertCols(at, n)
	s.merges.Insert(tracks.Cols, at, n)
	s.restructured()
}

func (s *Sheet) DeleteCols(lo, hi int) {
	lo, hi = max(lo, 0), min(hi, s.cols.Count()-1)
	if hi < lo {
		return
	}
	s.cols.Delete(lo, hi)
	s.cells.DeleteCols(lo, hi)
	s.merges.Delete(tracks.Cols, lo, hi)
	s.restructured()
}

func (s *Sheet) restructured() {
	s.syncMerges()
	fz := s.port.Freeze()
	if fz.Rows > s.rows.Count() || fz.Cols > s.cols.Count() {
		s.port.SetFreeze(min(fz.Rows, s.rows.Count()), min(fz.Cols, s.cols.Count()))
	}
	s.refilter()
	r, c := s.sel.Anchor()
	s.sel.SetAnchor(min(r, s.rows.Count()-1), min(c, s.cols.Count()-1))
}

func shift(set tracks.IndexSet, at, n int) tracks.IndexSet {
	out := tracks.IndexSet{}
	for i := range set {
		if i >= at {
			i += n
		}
		out.Add(i)
	}
	return out
}

func drop(set tracks.IndexSet, lo, hi int) tracks.IndexSet {
	out := tracks.IndexSet{}
	for i := range set {
		switch {
		case i < lo:
			out.Add(i)
		case i > hi:
			out.Add(i - (hi - lo + 1))
		}
	}
	return out
}

// ---------------------------------------------------------------- seeding

// Load replaces the sheet content with seed. Counts grow to fit the seed;
// merges that overlap are skipped and logged.
func (s *Sheet) Load(seed storage.Seed) {
	s.cells = grid.NewStore()
	s.merges = merge.NewRegistry()
	rows, cols := seed.Rows, seed.Cols
	if seed.Cells != nil {
		maxRow, maxCol := seed.Cells.Bounds()
		rows, cols = max(rows, maxRow+1), max(cols, maxCol+1)
	}
	s.rows.SetCount(max(s.settings.RowCount, rows))
	s.cols.SetCount(max(s.settings.ColCount, cols))
	for i := range s.rows.Count() {
		s.rows.Reset(i)
	}
	for i := range s.cols.Count() {
		s.cols.Reset(i)
	}

	if seed.Cells != nil {
		seed.Cells.Each(func(row, col int, c grid.Cell) {
			s.cells.Set(row, col, grid.Cell{Text: c.Text})
		})
	}
	for i, w := range seed.ColWidths {
		if err := s.cols.SetSize(i, w); err != nil {
			s.logger.Warnf("seed %s: %v", seed.Name, err)
		}
	}
	for i, h := range seed.RowHeights {
		if err := s.rows.SetSize(i, h); err != nil {
			s.logger.Warnf("seed %s: %v", seed.Name, err)
		}
	}

	s.rewire()
	for _, span := range seed.Merges {
		if err := s.Merge(span); err != nil {
			s.logger.Warnf("seed %s: %v", seed.Name, err)
		}
	}
	s.filter.Clear()
	s.manual = tracks.IndexSet{}
	s.refilter()
	if err := s.port.SetFreeze(seed.FreezeRows, seed.FreezeCols); err != nil {
		s.logger.Warnf("seed %s: %v", seed.Name, err)
	}
	s.port.SetScroll(tracks.Rows, 0)
	s.port.SetScroll(tracks.Cols, 0)
	s.sel.SetAnchor(0, 0)
	s.logger.Infof("loaded %s: %d cells, %d merges", seed.Name, s.cells.Len(), s.merges.Len())
}

// rewire builds the mapper, selection and pipeline over the current cell
// store and merge registry.
func (s *Sheet) rewire() {
	header := view.Header{Width: s.settings.HeaderWidth, Height: s.settings.HeaderHeight}
	s.mapper = view.NewMapper(s.port, s.merges, header)
	s.sel = selection.New(s.rows, s.cols, s.merges)
	s.sel.SetHidden(s.hidden)

	pipe := render.NewPipeline(s.port, s.calc, s.mapper, s.cells, s.merges)
	pipe.Styles = render.CellStyles{Cells: s.cells, Table: s.styles}
	pipe.Filter = s.filter
	pipe.Selection = s.sel
	pipe.ShowGrid = s.settings.ShowGrid
	s.pipe = pipe
}
