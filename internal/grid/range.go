package grid

// Range is an inclusive rectangle of cell addresses.
type Range struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// NewRange returns the rectangle spanning both corners, normalized so that
// start <= end on each axis.
func NewRange(r1, c1, r2, c2 int) Range {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	return Range{StartRow: r1, StartCol: c1, EndRow: r2, EndCol: c2}
}

// Single is the one-cell range at (row, col).
func Single(row, col int) Range {
	return Range{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
}

// Normalize swaps corners where start > end.
func (r Range) Normalize() Range {
	return NewRange(r.StartRow, r.StartCol, r.EndRow, r.EndCol)
}

func (r Range) Empty() bool {
	return r.EndRow < r.StartRow || r.EndCol < r.StartCol
}

// Size returns the number of rows and columns covered.
func (r Range) Size() (rows, cols int) {
	if r.Empty() {
		return 0, 0
	}
	return r.EndRow - r.StartRow + 1, r.EndCol - r.StartCol + 1
}

// Multiple reports whether the range covers more than one cell.
func (r Range) Multiple() bool {
	rows, cols := r.Size()
	return rows*cols > 1
}

func (r Range) Contains(row, col int) bool {
	return row >= r.StartRow && row <= r.EndRow && col >= r.StartCol && col <= r.EndCol
}

// Covers reports whether o lies entirely inside r.
func (r Range) Covers(o Range) bool {
	return r.Contains(o.StartRow, o.StartCol) && r.Contains(o.EndRow, o.EndCol)
}

func (r Range) Intersects(o Range) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.StartRow <= o.EndRow && o.StartRow <= r.EndRow &&
		r.StartCol <= o.EndCol && o.StartCol <= r.EndCol
}

// Union returns the smallest range containing both r and o.
func (r Range) Union(o Range) Range {
	return Range{
		StartRow: min(r.StartRow, o.StartRow),
		StartCol: min(r.StartCol, o.StartCol),
		EndRow:   max(r.EndRow, o.EndRow),
		EndCol:   max(r.EndCol, o.EndCol),
	}
}

// Anchor is the top-left address.
func (r Range) Anchor() (row, col int) {
	return r.StartRow, r.StartCol
}

// Span describes r as extra tracks beyond its anchor.
func (r Range) Span() Span {
	return Span{Rows: r.EndRow - r.StartRow, Cols: r.EndCol - r.StartCol}
}

// Each calls fn for every address in row-major order.
func (r Range) Each(fn func(row, col int)) {
	for i := r.StartRow; i <= r.EndRow; i++ {
		for j := r.StartCol; j <= r.EndCol; j++ {
			fn(i, j)
		}
	}
}

func (r Range) String() string {
	if r.Empty() {
		return ""
	}
	start := ColRowToName(r.StartCol, r.StartRow)
	if !r.Multiple() {
		return start
	}
	return start + ":" + ColRowToName(r.EndCol, r.EndRow)
}
