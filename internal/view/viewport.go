// Package view derives what part of the sheet is on screen and where: scroll
// and freeze state, the visible index range and pixel <-> cell mapping.
package view

import "gridview/internal/tracks"

// Scroll is the scroll position. X and Y are pixel offsets measured from the
// sheet origin; Row and Col are the cached first scrolled tracks derived from
// them.
type Scroll struct {
	X, Y     float64
	Row, Col int
}

// Freeze is the number of leading rows and columns pinned against scrolling.
type Freeze struct {
	Rows, Cols int
}

// Viewport owns scroll and freeze state. Fields change only through its
// methods.
type Viewport struct {
	rows, cols *tracks.Set
	hidden     tracks.Exclude
	scroll     Scroll
	freeze     Freeze
}

func NewViewport(rows, cols *tracks.Set) *Viewport {
	return &Viewport{rows: rows, cols: cols}
}

func (v *Viewport) Rows() *tracks.Set      { return v.rows }
func (v *Viewport) Cols() *tracks.Set      { return v.cols }
func (v *Viewport) Hidden() tracks.Exclude { return v.hidden }
func (v *Viewport) Scroll() Scroll         { return v.scroll }
func (v *Viewport) Freeze() Freeze         { return v.freeze }

// Set returns the track set of axis.
func (v *Viewport) Set(axis tracks.Axis) *tracks.Set {
	if axis == tracks.Cols {
		return v.cols
	}
	return v.rows
}

// Exclude returns the hidden-row set for the row axis and nil for columns.
func (v *Viewport) Exclude(axis tracks.Axis) tracks.Exclude {
	if axis == tracks.Cols {
		return nil
	}
	return v.hidden
}

// IsHidden reports whether track i of axis is left out of layout.
func (v *Viewport) IsHidden(axis tracks.Axis, i int) bool {
	ex := v.Exclude(axis)
	return ex != nil && ex.Has(i)
}

// SetHidden replaces the hidden-row provider.
func (v *Viewport) SetHidden(hidden tracks.Exclude) {
	v.hidden = hidden
	v.Resync()
}

// SetFreeze pins the first rows and cols. Counts above the track count are
// rejected and leave the state unchanged.
func (v *Viewport) SetFreeze(rows, cols int) error {
	if rows < 0 || rows > v.rows.Count() {
		return &tracks.OutOfRangeError{Axis: tracks.Rows, Index: rows, Count: v.rows.Count()}
	}
	if cols < 0 || cols > v.cols.Count() {
		return &tracks.OutOfRangeError{Axis: tracks.Cols, Index: cols, Count: v.cols.Count()}
	}
	v.freeze = Freeze{Rows: rows, Cols: cols}
	v.Resync()
	return nil
}

// FreezeCount returns the frozen track count of axis.
func (v *Viewport) FreezeCount(axis tracks.Axis) int {
	if axis == tracks.Cols {
		return v.freeze.Cols
	}
	return v.freeze.Rows
}

// FreezeWidth is the pixel width of the frozen columns.
func (v *Viewport) FreezeWidth() float64 {
	return v.cols.Sum(0, v.freeze.Cols, nil)
}

// FreezeHeight is the pixel height of the frozen rows, hidden rows excluded.
func (v *Viewport) FreezeHeight() float64 {
	return v.rows.Sum(0, v.freeze.Rows, v.hidden)
}

func (v *Viewport) freezeTotal(axis tracks.Axis) float64 {
	if axis == tracks.Cols {
		return v.FreezeWidth()
	}
	return v.FreezeHeight()
}

// Offset is how far the scrollable body is translated on axis.
func (v *Viewport) Offset(axis tracks.Axis) float64 {
	px := v.scroll.Y
	if axis == tracks.Cols {
		px = v.scroll.X
	}
	return max(0, px-v.freezeTotal(axis))
}

// SetScroll moves the scroll position of axis to px (clamped at 0) and
// returns the recomputed start index.
func (v *Viewport) SetScroll(axis tracks.Axis, px float64) int {
	px = max(px, 0)
	if axis == tracks.Cols {
		v.scroll.X = px
		v.scroll.Col = v.deriveStart(axis)
		return v.scroll.Col
	}
	v.scroll.Y = px
	v.scroll.Row = v.deriveStart(axis)
	return v.scroll.Row
}

// ScrollBy moves the scroll position of axis by delta pixels.
func (v *Viewport) ScrollBy(axis tracks.Axis, delta float64) int {
	if axis == tracks.Cols {
		return v.SetScroll(axis, v.scroll.X+delta)
	}
	return v.SetScroll(axis, v.scroll.Y+delta)
}

// Resync re-derives the cached start indices after sizes, counts, freeze or
// hidden rows changed.
func (v *Viewport) Resync() {
	v.scroll.Row = v.deriveStart(tracks.Rows)
	v.scroll.Col = v.deriveStart(tracks.Cols)
}

// StartOffset is the body-relative pixel position of the cached start track,
// i.e. the sum of sizes from the freeze boundary up to it.
func (v *Viewport) StartOffset(axis tracks.Axis) float64 {
	return v.Set(axis).Sum(v.FreezeCount(axis), v.start(axis), v.Exclude(axis))
}

func (v *Viewport) start(axis tracks.Axis) int {
	if axis == tracks.Cols {
		return v.scroll.Col
	}
	return v.scroll.Row
}

// deriveStart finds the track containing the body offset, counting from the
// freeze boundary.
func (v *Viewport) deriveStart(axis tracks.Axis) int {
	set := v.Set(axis)
	first := v.FreezeCount(axis)
	off := v.Offset(axis)
	ex := v.Exclude(axis)

	i := first
	acc := 0.0
	for ; i < set.Count(); i++ {
		if ex != nil && ex.Has(i) {
			continue
		}
		size := set.Size(i)
		if acc+size > off {
			break
		}
		acc += size
	}
	if i >= set.Count() {
		i = max(first, set.Count()-1)
	}
	return i
}
