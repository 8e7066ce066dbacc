// Package resize implements the drag interaction that changes a row height or
// column width.
package resize

import (
	"gridview/internal/tracks"
	"gridview/internal/view"
)

// State of a Resizer.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Sizer is the track set a resize commits to.
type Sizer interface {
	SetSize(i int, v float64) error
	MinSize() float64
}

// Resizer runs Idle -> Dragging -> Idle for one axis. While dragging the
// candidate size only moves the guide; the track set is written on End.
type Resizer struct {
	axis  tracks.Axis
	set   Sizer
	min   float64
	state State

	index    int
	rect     view.Rect
	distance float64
	moved    bool

	// OnFinish is called after a size has been committed.
	OnFinish func(axis tracks.Axis, index int, size float64)
}

// New returns an idle Resizer for axis. minSize <= 0 uses the set's minimum.
func New(axis tracks.Axis, set Sizer, minSize float64) *Resizer {
	if minSize <= 0 {
		minSize = set.MinSize()
	}
	return &Resizer{axis: axis, set: set, min: minSize, index: -1}
}

func (r *Resizer) Axis() tracks.Axis { return r.axis }
func (r *Resizer) State() State      { return r.state }
func (r *Resizer) Index() int        { return r.index }

// Distance is the candidate size.
func (r *Resizer) Distance() float64 { return r.distance }

// Begin starts dragging the handle of track index whose current rectangle is
// rect. It is ignored while a drag is in progress.
func (r *Resizer) Begin(index int, rect view.Rect) {
	if r.state == Dragging {
		return
	}
	r.state = Dragging
	r.index = index
	r.rect = rect
	r.moved = false
	r.distance = rect.Height
	if r.axis == tracks.Cols {
		r.distance = rect.Width
	}
}

// Move accumulates a pointer delta. Only the component along the axis counts.
func (r *Resizer) Move(dx, dy float64) {
	if r.state != Dragging {
		return
	}
	d := dy
	if r.axis == tracks.Cols {
		d = dx
	}
	if d == 0 {
		return
	}
	r.moved = true
	r.distance += d
}

// Guide returns the widget position of the preview line: an x for columns, a
// y for rows. The line does not follow the pointer below the minimum.
func (r *Resizer) Guide() (float64, bool) {
	if r.state != Dragging {
		return 0, false
	}
	d := max(r.distance, r.min)
	if r.axis == tracks.Cols {
		return r.rect.Left + d, true
	}
	return r.rect.Top + d, true
}

// End commits the candidate size and returns to Idle. A release below the
// minimum, or one without any movement, commits the minimum.
func (r *Resizer) End() (float64, error) {
	if r.state != Dragging {
		return 0, nil
	}
	index, size := r.index, r.distance
	if !r.moved || size < r.min {
		size = r.min
	}
	r.reset()

	if err := r.set.SetSize(index, size); err != nil {
		return 0, err
	}
	if r.OnFinish != nil {
		r.OnFinish(r.axis, index, size)
	}
	return size, nil
}

// Cancel abandons the drag without touching the track set.
func (r *Resizer) Cancel() {
	r.reset()
}

func (r *Resizer) reset() {
	r.state = Idle
	r.index = -1
	r.distance = 0
	r.moved = false
	r.rect = view.Rect{}
}
