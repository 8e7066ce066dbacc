// Package tracks models the sizes of rows or columns along one axis: a default
// size, a logical count and sparse per-index overrides.
package tracks

import (
	"fmt"
	"sort"
)

// Axis selects rows or columns.
type Axis int

const (
	Rows Axis = iota
	Cols
)

func (a Axis) String() string {
	if a == Cols {
		return "col"
	}
	return "row"
}

// OutOfRangeError is returned by mutating calls addressing an index outside
// [0, Count).
type OutOfRangeError struct {
	Axis  Axis
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Axis, e.Index, e.Count)
}

// Exclude is a set of indices left out of sums and iteration (hidden rows).
type Exclude interface {
	Has(i int) bool
}

// IndexSet is the concrete Exclude used by the filter.
type IndexSet map[int]struct{}

func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Track is the sizing record of one row or column.
type Track struct {
	Index      int
	Size       float64
	Overridden bool
}

// Set holds the track sizes of one axis.
type Set struct {
	axis        Axis
	count       int
	defaultSize float64
	minSize     float64
	sizes       map[int]float64
}

// New creates a Set of count tracks of defaultSize. SetSize clamps to minSize.
func New(axis Axis, count int, defaultSize, minSize float64) *Set {
	return &Set{
		axis:        axis,
		count:       max(count, 0),
		defaultSize: max(defaultSize, 0),
		minSize:     max(minSize, 0),
		sizes:       map[int]float64{},
	}
}

func (s *Set) Axis() Axis            { return s.axis }
func (s *Set) Count() int            { return s.count }
func (s *Set) MinSize() float64      { return s.minSize }
func (s *Set) Overridden(i int) bool { _, ok := s.sizes[i]; return ok }

// SetCount changes the logical track count. Overrides at or past the new
// count are dropped.
func (s *Set) SetCount(n int) {
	s.count = max(n, 0)
	for i := range s.sizes {
		if i >= s.count {
			delete(s.sizes, i)
		}
	}
}

// Size returns the override for i, or the default size.
func (s *Set) Size(i int) float64 {
	if v, ok := s.sizes[i]; ok {
		return v
	}
	return s.defaultSize
}

func (s *Set) Track(i int) Track {
	v, ok := s.sizes[i]
	if !ok {
		v = s.defaultSize
	}
	return Track{Index: i, Size: v, Overridden: ok}
}

// SetSize overrides the size of track i. Values below the minimum are clamped.
func (s *Set) SetSize(i int, v float64) error {
	if i < 0 || i >= s.count {
		return &OutOfRangeError{Axis: s.axis, Index: i, Count: s.count}
	}
	s.sizes[i] = max(v, s.minSize)
	return nil
}

// Reset removes the override of track i.
func (s *Set) Reset(i int) {
	delete(s.sizes, i)
}

// Sum adds the sizes of tracks in [lo, hi), skipping indices in exclude.
func (s *Set) Sum(lo, hi int, exclude Exclude) float64 {
	lo = max(lo, 0)
	if hi <= lo {
		return 0
	}
	if exclude == nil {
		total := float64(hi-lo) * s.defaultSize
		for i, v := range s.sizes {
			if i >= lo && i < hi {
				total += v - s.defaultSize
			}
		}
		return total
	}
	total := 0.0
	for i := lo; i < hi; i++ {
		if exclude.Has(i) {
			continue
		}
		total += s.Size(i)
	}
	return total
}

// Total is the size of all tracks.
func (s *Set) Total() float64 {
	return s.Sum(0, s.count, nil)
}

// Insert adds n default-sized tracks before index at.
func (s *Set) Insert(at, n int) {
	if n <= 0 {
		return
	}
	next := make(map[int]float64, len(s.sizes))
	for i, v := range s.sizes {
		if i >= at {
			i += n
		}
		next[i] = v
	}
	s.sizes = next
	s.count += n
}

// Delete removes tracks lo..hi inclusive.
func (s *Set) Delete(lo, hi int) {
	lo = max(lo, 0)
	hi = min(hi, s.count-1)
	if hi < lo {
		return
	}
	n := hi - lo + 1
	next := make(map[int]float64, len(s.sizes))
	for i, v := range s.sizes {
		switch {
		case i < lo:
			next[i] = v
		case i > hi:
			next[i-n] = v
		}
	}
	s.sizes = next
	s.count -= n
}
