// Package filter implements the sheet auto filter: a header row over a range
// and per-column value filters that hide the rows they reject.
package filter

import (
	"slices"
	"strings"

	"gridview/internal/grid"
	"gridview/internal/tracks"
)

// Operator of a column filter.
type Operator string

const (
	All Operator = "all"
	In  Operator = "in"
)

// Filter restricts one column.
type Filter struct {
	Col    int
	Op     Operator
	Values []string
}

// Includes reports whether a cell text passes the filter.
func (f Filter) Includes(v string) bool {
	switch f.Op {
	case All:
		return true
	case In:
		return slices.Contains(f.Values, v)
	}
	return false
}

// Texts reads cell text.
type Texts interface {
	Text(row, col int) string
}

// AutoFilter is inactive until SetRef is called. The first row of its range
// is the header; the remaining rows are subject to the filters.
type AutoFilter struct {
	ref     grid.Range
	active  bool
	filters []Filter
}

func New() *AutoFilter { return &AutoFilter{} }

func (a *AutoFilter) Active() bool { return a.active }

// Range is the full filtered range including the header row.
func (a *AutoFilter) Range() grid.Range { return a.ref }

// SetRef activates the filter over ref. Existing column filters are kept.
func (a *AutoFilter) SetRef(ref grid.Range) {
	a.ref = ref.Normalize()
	a.active = true
}

// Clear deactivates the filter and drops all column filters.
func (a *AutoFilter) Clear() {
	a.ref = grid.Range{}
	a.active = false
	a.filters = nil
}

// HeaderRange is the first row of the range.
func (a *AutoFilter) HeaderRange() (grid.Range, bool) {
	if !a.active {
		return grid.Range{}, false
	}
	h := a.ref
	h.EndRow = h.StartRow
	return h, true
}

// Includes reports whether (row, col) lies in the header row.
func (a *AutoFilter) Includes(row, col int) bool {
	h, ok := a.HeaderRange()
	return ok && h.Contains(row, col)
}

// AddFilter sets the filter of col, replacing an earlier one.
func (a *AutoFilter) AddFilter(col int, op Operator, values []string) {
	f := Filter{Col: col, Op: op, Values: slices.Clone(values)}
	for i := range a.filters {
		if a.filters[i].Col == col {
			a.filters[i] = f
			return
		}
	}
	a.filters = append(a.filters, f)
}

// Filter returns the filter of col.
func (a *AutoFilter) Filter(col int) (Filter, bool) {
	for _, f := range a.filters {
		if f.Col == col {
			return f, true
		}
	}
	return Filter{}, false
}

func (a *AutoFilter) Filters() []Filter { return slices.Clone(a.filters) }

// Hidden returns the rows below the header rejected by any filter.
func (a *AutoFilter) Hidden(cells Texts) tracks.IndexSet {
	out := tracks.IndexSet{}
	if !a.active {
		return out
	}
	for r := a.ref.StartRow + 1; r <= a.ref.EndRow; r++ {
		for _, f := range a.filters {
			if !f.Includes(cells.Text(r, f.Col)) {
				out.Add(r)
				break
			}
		}
	}
	return out
}

// Items counts the values of col below the header. Blank cells count under "".
func (a *AutoFilter) Items(col int, cells Texts) map[string]int {
	m := map[string]int{}
	if !a.active {
		return m
	}
	for r := a.ref.StartRow + 1; r <= a.ref.EndRow; r++ {
		v := cells.Text(r, col)
		if strings.TrimSpace(v) == "" {
			v = ""
		}
		m[v]++
	}
	return m
}
