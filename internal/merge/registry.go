// Package merge keeps the set of merged cell spans of a sheet.
package merge

import (
	"fmt"
	"iter"

	"gridview/internal/grid"
	"gridview/internal/tracks"
)

// OverlapError rejects a span that intersects an existing, non-identical span.
type OverlapError struct {
	Span     grid.Range
	Existing grid.Range
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("merge %s overlaps existing merge %s", e.Span, e.Existing)
}

// Registry holds disjoint rectangular spans, each anchored at its top-left cell.
type Registry struct {
	spans []grid.Range
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers span. An identical span is accepted without change and a
// single-cell span is ignored.
func (m *Registry) Add(span grid.Range) error {
	span = span.Normalize()
	if !span.Multiple() {
		return nil
	}
	for _, s := range m.spans {
		if s == span {
			return nil
		}
		if s.Intersects(span) {
			return &OverlapError{Span: span, Existing: s}
		}
	}
	m.spans = append(m.spans, span)
	return nil
}

// Remove deletes the span covering (row, col) and returns it.
func (m *Registry) Remove(row, col int) (grid.Range, bool) {
	for i, s := range m.spans {
		if s.Contains(row, col) {
			m.spans = append(m.spans[:i], m.spans[i+1:]...)
			return s, true
		}
	}
	return grid.Range{}, false
}

// ResolveAnchor returns the span covering (row, col). The span's start is the
// anchor address.
func (m *Registry) ResolveAnchor(row, col int) (grid.Range, bool) {
	for _, s := range m.spans {
		if s.Contains(row, col) {
			return s, true
		}
	}
	return grid.Range{}, false
}

// Intersecting yields the spans intersecting q. The registry must not be
// mutated while iterating.
func (m *Registry) Intersecting(q grid.Range) iter.Seq[grid.Range] {
	return func(yield func(grid.Range) bool) {
		for _, s := range m.spans {
			if s.Intersects(q) && !yield(s) {
				return
			}
		}
	}
}

// Spans returns a copy of all spans.
func (m *Registry) Spans() []grid.Range {
	out := make([]grid.Range, len(m.spans))
	copy(out, m.spans)
	return out
}

func (m *Registry) Len() int {
	return len(m.spans)
}

// Insert shifts spans for n tracks inserted before index at. Spans straddling
// the insertion point grow.
func (m *Registry) Insert(axis tracks.Axis, at, n int) {
	for i, s := range m.spans {
		lo, hi := bounds(s, axis)
		switch {
		case lo >= at:
			lo, hi = lo+n, hi+n
		case hi >= at:
			hi += n
		}
		m.spans[i] = withBounds(s, axis, lo, hi)
	}
}

// Delete adjusts spans for tracks lo..hi removed. Spans left covering a
// single cell are dropped.
func (m *Registry) Delete(axis tracks.Axis, lo, hi int) {
	n := hi - lo + 1
	kept := m.spans[:0]
	for _, s := range m.spans {
		slo, shi := bounds(s, axis)
		switch {
		case shi < lo:
		case slo > hi:
			slo, shi = slo-n, shi-n
		default:
			remaining := (shi - slo + 1) - (min(shi, hi) - max(slo, lo) + 1)
			if remaining <= 0 {
				continue
			}
			slo = min(slo, lo)
			shi = slo + remaining - 1
		}
		s = withBounds(s, axis, slo, shi)
		if s.Multiple() {
			kept = append(kept, s)
		}
	}
	m.spans = kept
}

func bounds(s grid.Range, axis tracks.Axis) (int, int) {
	if axis == tracks.Cols {
		return s.StartCol, s.EndCol
	}
	return s.StartRow, s.EndRow
}

func withBounds(s grid.Range, axis tracks.Axis, lo, hi int) grid.Range {
	if axis == tracks.Cols {
		s.StartCol, s.EndCol = lo, hi
	} else {
		s.StartRow, s.EndRow = lo, hi
	}
	return s
}
