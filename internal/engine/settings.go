package engine

// Settings configures a Sheet. Sizes are pixels.
type Settings struct {
	RowCount     int
	ColCount     int
	RowHeight    float64
	ColWidth     float64
	MinRowHeight float64
	MinColWidth  float64
	HeaderWidth  float64
	HeaderHeight float64
	ShowGrid     bool
}

// DefaultSettings returns the settings of an empty sheet.
func DefaultSettings() Settings {
	return Settings{
		RowCount:     100,
		ColCount:     26,
		RowHeight:    25,
		ColWidth:     100,
		MinRowHeight: 5,
		MinColWidth:  60,
		HeaderWidth:  60,
		HeaderHeight: 25,
		ShowGrid:     true,
	}
}

// normalize replaces unusable values with the defaults.
func (s Settings) normalize() Settings {
	d := DefaultSettings()
	if s.RowCount < 0 {
		s.RowCount = d.RowCount
	}
	if s.ColCount < 0 {
		s.ColCount = d.ColCount
	}
	if s.RowHeight <= 0 {
		s.RowHeight = d.RowHeight
	}
	if s.ColWidth <= 0 {
		s.ColWidth = d.ColWidth
	}
	if s.MinRowHeight <= 0 {
		s.MinRowHeight = d.MinRowHeight
	}
	if s.MinColWidth <= 0 {
		s.MinColWidth = d.MinColWidth
	}
	if s.HeaderWidth < 0 {
		s.HeaderWidth = 0
	}
	if s.HeaderHeight < 0 {
		s.HeaderHeight = 0
	}
	return s
}
