// Package selection tracks the selected cell range of a sheet.
package selection

import (
	"iter"

	"gridview/internal/grid"
	"gridview/internal/tracks"
)

// Direction is a keyboard move.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	RowFirst // first column of the active row
	RowLast  // last column of the active row
	ColFirst // first row of the active column
	ColLast  // last row of the active column
)

var directionNames = map[string]Direction{
	"left":      Left,
	"right":     Right,
	"up":        Up,
	"down":      Down,
	"row-first": RowFirst,
	"row-last":  RowLast,
	"col-first": ColFirst,
	"col-last":  ColLast,
}

// ParseDirection maps names such as "left" or "row-last" to a Direction.
func ParseDirection(name string) (Direction, bool) {
	d, ok := directionNames[name]
	return d, ok
}

// Merges is the part of the merge registry the selection needs.
type Merges interface {
	ResolveAnchor(row, col int) (grid.Range, bool)
	Intersecting(q grid.Range) iter.Seq[grid.Range]
}

// Counter reports a logical track count.
type Counter interface {
	Count() int
}

// Model holds the anchor (where the selection started), the active edge
// (the cell that moves when extending) and the merge-closed range.
type Model struct {
	rows, cols Counter
	merges     Merges
	hidden     tracks.Exclude

	anchorRow, anchorCol int
	activeRow, activeCol int
	rng                  grid.Range
}

func New(rows, cols Counter, merges Merges) *Model {
	return &Model{rows: rows, cols: cols, merges: merges}
}

// SetHidden sets the rows vertical moves step over.
func (m *Model) SetHidden(hidden tracks.Exclude) {
	m.hidden = hidden
}

func (m *Model) Range() grid.Range          { return m.rng }
func (m *Model) Anchor() (row, col int)     { return m.anchorRow, m.anchorCol }
func (m *Model) Active() (row, col int)     { return m.activeRow, m.activeCol }
func (m *Model) Multiple() bool             { return m.rng.Multiple() }
func (m *Model) Contains(row, col int) bool { return m.rng.Contains(row, col) }

// SetAnchor selects (row, col) expanded to its merge span. row == -1 selects
// the whole column, col == -1 the whole row, both select everything.
func (m *Model) SetAnchor(row, col int) {
	m.anchorRow, m.anchorCol = row, col
	m.activeRow, m.activeCol = row, col
	m.rng = m.close(m.rect(row, col, row, col))
}

// ExtendTo spans the anchor and (row, col), merge-closed.
func (m *Model) ExtendTo(row, col int) {
	m.activeRow, m.activeCol = row, col
	m.rng = m.close(m.rect(m.anchorRow, m.anchorCol, row, col))
}

// MoveDirectional moves by one track or to a sheet edge. Without extend the
// selection collapses to the new cell; with extend the active edge moves and
// the anchor stays. Moves clamp at the sheet bounds.
func (m *Model) MoveDirectional(dir Direction, extend bool) {
	row, col := m.anchorRow, m.anchorCol
	if extend {
		row, col = m.activeRow, m.activeCol
	}
	row, col = max(row, 0), max(col, 0)
	lastRow, lastCol := m.rows.Count()-1, m.cols.Count()-1

	switch dir {
	case Left:
		if col > 0 {
			col--
		}
	case Right:
		if !extend && m.rng.EndCol != col {
			col = m.rng.EndCol
		}
		if col < lastCol {
			col++
		}
	case Up:
		row = m.step(row, -1)
	case Down:
		if !extend && m.rng.EndRow != row {
			row = m.rng.EndRow
		}
		row = m.step(row, 1)
	case RowFirst:
		col = 0
	case RowLast:
		col = lastCol
	case ColFirst:
		row = m.step(-1, 1)
	case ColLast:
		row = m.step(lastRow+1, -1)
	}
	row = min(max(row, 0), max(lastRow, 0))
	col = min(max(col, 0), max(lastCol, 0))

	if extend {
		m.ExtendTo(row, col)
		return
	}
	m.SetAnchor(row, col)
}

// step moves from row by delta, skipping hidden rows. It stays put when no
// visible row exists in that direction.
func (m *Model) step(row, delta int) int {
	last := m.rows.Count() - 1
	for next := row + delta; next >= 0 && next <= last; next += delta {
		if m.hidden == nil || !m.hidden.Has(next) {
			return next
		}
	}
	return row
}

// rect builds the rectangle between two addresses, widening -1 sentinels to
// the full axis.
func (m *Model) rect(r1, c1, r2, c2 int) grid.Range {
	lastRow, lastCol := max(m.rows.Count()-1, 0), max(m.cols.Count()-1, 0)
	rng := grid.NewRange(max(r1, 0), max(c1, 0), max(r2, 0), max(c2, 0))
	if r1 < 0 || r2 < 0 {
		rng.StartRow, rng.EndRow = 0, lastRow
	}
	if c1 < 0 || c2 < 0 {
		rng.StartCol, rng.EndCol = 0, lastCol
	}
	rng.StartRow, rng.EndRow = min(rng.StartRow, lastRow), min(rng.EndRow, lastRow)
	rng.StartCol, rng.EndCol = min(rng.StartCol, lastCol), min(rng.EndCol, lastCol)
	return rng
}

// close grows rng until every merge span it touches lies fully inside it.
func (m *Model) close(rng grid.Range) grid.Range {
	if m.merges == nil {
		return rng
	}
	for {
		grown := rng
		for span := range m.merges.Intersecting(rng) {
			if !grown.Covers(span) {
				grown = grown.Union(span)
			}
		}
		if grown == rng {
			return rng
		}
		rng = grown
	}
}
