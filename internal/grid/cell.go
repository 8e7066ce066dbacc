package grid

import "sort"

// Span counts the tracks a merged anchor covers beyond itself.
// The zero Span means the cell is not merged.
type Span struct {
	Rows, Cols int
}

func (s Span) IsZero() bool {
	return s.Rows == 0 && s.Cols == 0
}

// Cell represents a single cell content.
type Cell struct {
	Text string
	// Style is a 1-based index into the sheet style table; 0 is the default style.
	Style int
	// Merge is set on the anchor of a merged span only.
	Merge Span
}

// Store is a sparse row -> column -> cell map. A missing entry is an empty
// default cell.
type Store struct {
	rows map[int]map[int]Cell
}

func NewStore() *Store {
	return &Store{rows: map[int]map[int]Cell{}}
}

func (s *Store) Get(row, col int) (Cell, bool) {
	cells, ok := s.rows[row]
	if !ok {
		return Cell{}, false
	}
	c, ok := cells[col]
	return c, ok
}

// Cell returns the cell at (row, col) or the zero Cell.
func (s *Store) Cell(row, col int) Cell {
	c, _ := s.Get(row, col)
	return c
}

// Text is shorthand for Cell(row, col).Text.
func (s *Store) Text(row, col int) string {
	return s.Cell(row, col).Text
}

func (s *Store) Set(row, col int, c Cell) {
	cells, ok := s.rows[row]
	if !ok {
		cells = map[int]Cell{}
		s.rows[row] = cells
	}
	cells[col] = c
}

// SetText replaces the text and keeps style and merge metadata.
func (s *Store) SetText(row, col int, text string) {
	c := s.Cell(row, col)
	c.Text = text
	s.Set(row, col, c)
}

func (s *Store) SetStyle(row, col, style int) {
	c := s.Cell(row, col)
	c.Style = style
	s.Set(row, col, c)
}

// SetMerge records span metadata on the anchor at (row, col). A zero span
// clears it, dropping the entry when nothing else is left.
func (s *Store) SetMerge(row, col int, span Span) {
	c, ok := s.Get(row, col)
	if !ok && span.IsZero() {
		return
	}
	c.Merge = span
	if c == (Cell{}) {
		s.Delete(row, col)
		return
	}
	s.Set(row, col, c)
}

func (s *Store) Delete(row, col int) {
	cells, ok := s.rows[row]
	if !ok {
		return
	}
	delete(cells, col)
	if len(cells) == 0 {
		delete(s.rows, row)
	}
}

// Len is the number of stored cells.
func (s *Store) Len() int {
	n := 0
	for _, cells := range s.rows {
		n += len(cells)
	}
	return n
}

// Each visits stored cells in row-major order.
func (s *Store) Each(fn func(row, col int, c Cell)) {
	rows := make([]int, 0, len(s.rows))
	for r := range s.rows {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	for _, r := range rows {
		cells := s.rows[r]
		cols := make([]int, 0, len(cells))
		for c := range cells {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		for _, c := range cols {
			fn(r, c, cells[c])
		}
	}
}

// Bounds returns the largest stored row and column, or -1, -1 when empty.
func (s *Store) Bounds() (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for r, cells := range s.rows {
		if r > maxRow {
			maxRow = r
		}
		for c := range cells {
			if c > maxCol {
				maxCol = c
			}
		}
	}
	return maxRow, maxCol
}

// InsertRows shifts rows at or after idx down by n.
func (s *Store) InsertRows(idx, n int) {
	next := make(map[int]map[int]Cell, len(s.rows))
	for r, cells := range s.rows {
		if r >= idx {
			r += n
		}
		next[r] = cells
	}
	s.rows = next
}

// DeleteRows removes rows lo..hi inclusive and shifts the rest up.
func (s *Store) DeleteRows(lo, hi int) {
	n := hi - lo + 1
	next := make(map[int]map[int]Cell, len(s.rows))
	for r, cells := range s.rows {
		switch {
		case r < lo:
			next[r] = cells
		case r > hi:
			next[r-n] = cells
		}
	}
	s.rows = next
}

// InsertCols shifts columns at or after idx right by n.
func (s *Store) InsertCols(idx, n int) {
	for r, cells := range s.rows {
		next := make(map[int]Cell, len(cells))
		for c, v := range cells {
			if c >= idx {
				c += n
			}
			next[c] = v
		}
		s.rows[r] = next
	}
}

// DeleteCols removes columns lo..hi inclusive and shifts the rest left.
func (s *Store) DeleteCols(lo, hi int) {
	n := hi - lo + 1
	for r, cells := range s.rows {
		next := make(map[int]Cell, len(cells))
		for c, v := range cells {
			switch {
			case c < lo:
				next[c] = v
			case c > hi:
				next[c-n] = v
			}
		}
		if len(next) == 0 {
			delete(s.rows, r)
			continue
		}
		s.rows[r] = next
	}
}
