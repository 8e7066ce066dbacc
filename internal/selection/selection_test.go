package selection

import (
	"testing"

	"gridview/internal/grid"
	"gridview/internal/merge"
	"gridview/internal/tracks"
)

func newModel(t *testing.T, spans ...grid.Range) *Model {
	t.Helper()
	reg := merge.NewRegistry()
	for _, s := range spans {
		if err := reg.Add(s); err != nil {
			t.Fatalf("Add(%v): %v", s, err)
		}
	}
	rows := tracks.New(tracks.Rows, 10, 25, 5)
	cols := tracks.New(tracks.Cols, 10, 100, 60)
	return New(rows, cols, reg)
}

func TestSetAnchorSnapsToMerge(t *testing.T) {
	m := newModel(t, grid.NewRange(2, 2, 3, 3))
	m.SetAnchor(3, 3)
	if got := m.Range(); got != grid.NewRange(2, 2, 3, 3) {
		t.Errorf("Range() = %v, expected C3:D4", got)
	}
}

func TestSetAnchorSentinels(t *testing.T) {
	m := newModel(t)
	tests := []struct {
		row, col int
		expected grid.Range
	}{
		{-1, 4, grid.NewRange(0, 4, 9, 4)},
		{6, -1, grid.NewRange(6, 0, 6, 9)},
		{-1, -1, grid.NewRange(0, 0, 9, 9)},
	}
	for _, tt := range tests {
		m.SetAnchor(tt.row, tt.col)
		if got := m.Range(); got != tt.expected {
			t.Errorf("SetAnchor(%d, %d) -> %v, expected %v", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestExtendToIsMergeClosedAndIdempotent(t *testing.T) {
	// the second span only touches the range after the first one is absorbed
	m := newModel(t, grid.NewRange(2, 2, 3, 3), grid.NewRange(0, 3, 1, 4))
	m.SetAnchor(0, 0)
	m.ExtendTo(2, 2)

	want := grid.NewRange(0, 0, 3, 4)
	if got := m.Range(); got != want {
		t.Fatalf("ExtendTo(2, 2) = %v, expected %v", got, want)
	}
	m.ExtendTo(2, 2)
	if got := m.Range(); got != want {
		t.Errorf("second ExtendTo changed the range: %v", got)
	}
	if r, c := m.Anchor(); r != 0 || c != 0 {
		t.Errorf("anchor moved to (%d, %d)", r, c)
	}
}

func TestExtendToNormalizes(t *testing.T) {
	m := newModel(t)
	m.SetAnchor(5, 5)
	m.ExtendTo(1, 2)
	if got := m.Range(); got != grid.NewRange(1, 2, 5, 5) {
		t.Errorf("Range() = %v", got)
	}
}

func TestMoveDirectional(t *testing.T) {
	tests := []struct {
		name     string
		start    [2]int
		dir      Direction
		expected grid.Range
	}{
		{"left clamps", [2]int{0, 0}, Left, grid.Single(0, 0)},
		{"up clamps", [2]int{0, 3}, Up, grid.Single(0, 3)},
		{"right", [2]int{4, 4}, Right, grid.Single(4, 5)},
		{"right clamps", [2]int{4, 9}, Right, grid.Single(4, 9)},
		{"down clamps", [2]int{9, 1}, Down, grid.Single(9, 1)},
		{"row-first", [2]int{4, 7}, RowFirst, grid.Single(4, 0)},
		{"row-last", [2]int{4, 2}, RowLast, grid.Single(4, 9)},
		{"col-first", [2]int{6, 2}, ColFirst, grid.Single(0, 2)},
		{"col-last", [2]int{6, 2}, ColLast, grid.Single(9, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)
			m.SetAnchor(tt.start[0], tt.start[1])
			m.MoveDirectional(tt.dir, false)
			if got := m.Range(); got != tt.expected {
				t.Errorf("Range() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMoveOutOfMerge(t *testing.T) {
	m := newModel(t, grid.NewRange(2, 2, 3, 3))
	m.SetAnchor(2, 2)
	m.MoveDirectional(Right, false)
	if got := m.Range(); got != grid.Single(2, 4) {
		t.Errorf("right from merge = %v, expected E3", got)
	}

	m.SetAnchor(2, 2)
	m.MoveDirectional(Down, false)
	if got := m.Range(); got != grid.Single(4, 2) {
		t.Errorf("down from merge = %v, expected C5", got)
	}
}

func TestMoveExtend(t *testing.T) {
	m := newModel(t)
	m.SetAnchor(3, 3)
	m.MoveDirectional(Right, true)
	m.MoveDirectional(Down, true)
	m.MoveDirectional(Down, true)
	if got := m.Range(); got != grid.NewRange(3, 3, 5, 4) {
		t.Fatalf("Range() = %v", got)
	}
	if r, c := m.Active(); r != 5 || c != 4 {
		t.Errorf("Active() = (%d, %d)", r, c)
	}
	m.MoveDirectional(ColFirst, true)
	if got := m.Range(); got != grid.NewRange(0, 3, 3, 4) {
		t.Errorf("extend to col-first = %v", got)
	}

	m.MoveDirectional(Left, false)
	if got := m.Range(); got != grid.Single(3, 2) || m.Multiple() {
		t.Errorf("plain move must collapse, got %v", got)
	}
}

func TestMoveSkipsHiddenRows(t *testing.T) {
	m := newModel(t)
	m.SetHidden(tracks.IndexSet{4: {}, 5: {}, 0: {}})
	m.SetAnchor(3, 1)
	m.MoveDirectional(Down, false)
	if got := m.Range(); got != grid.Single(6, 1) {
		t.Errorf("down over hidden rows = %v, expected B7", got)
	}
	m.MoveDirectional(ColFirst, false)
	if got := m.Range(); got != grid.Single(1, 1) {
		t.Errorf("col-first with hidden row 0 = %v, expected B2", got)
	}
	m.MoveDirectional(Up, false)
	if got := m.Range(); got != grid.Single(1, 1) {
		t.Errorf("up with only hidden rows above must stay, got %v", got)
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("row-last"); !ok || d != RowLast {
		t.Errorf("ParseDirection(row-last) = %v, %v", d, ok)
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Errorf("unknown direction accepted")
	}
}
