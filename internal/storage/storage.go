// Package storage imports sheet content from CSV and xlsx files.
package storage

import (
	"bufio"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gridview/internal/grid"

	"github.com/olekukonko/errors"
	"github.com/xuri/excelize/v2"
)

// Widths excelize reports for columns and rows without a custom size.
const (
	defaultColChars  = 9.140625
	defaultRowPoints = 15.0
)

// Seed is the imported content a sheet starts from.
type Seed struct {
	Name  string
	Cells *grid.Store
	// Rows and Cols are one past the largest used index.
	Rows, Cols int
	// ColWidths and RowHeights hold custom sizes in pixels.
	ColWidths  map[int]float64
	RowHeights map[int]float64
	Merges     []grid.Range
	FreezeRows int
	FreezeCols int
}

func newSeed(name string) Seed {
	return Seed{
		Name:       name,
		Cells:      grid.NewStore(),
		ColWidths:  map[int]float64{},
		RowHeights: map[int]float64{},
	}
}

func (s *Seed) set(row, col int, text string) {
	if text == "" {
		return
	}
	s.Cells.SetText(row, col, text)
	s.Rows = max(s.Rows, row+1)
	s.Cols = max(s.Cols, col+1)
}

// Load picks the loader by file extension. sheet selects the xlsx worksheet;
// empty means the active one.
func Load(filename, sheet string) (Seed, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return LoadCSV(filename)
	case ".xlsx", ".xlsm":
		return LoadXLSX(filename, sheet)
	}
	return Seed{}, errors.Newf("unsupported file type %q", filepath.Ext(filename))
}

// LoadCSV loads CSV records row by row. Empty fields leave no cell.
func LoadCSV(filename string) (Seed, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Seed{}, errors.Newf("open %s", filename).Wrap(err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return Seed{}, errors.Newf("read csv %s", filename).Wrap(err)
	}
	seed := newSeed(filepath.Base(filename))
	for rIdx, row := range records {
		for cIdx, val := range row {
			seed.set(rIdx, cIdx, val)
		}
	}
	return seed, nil
}

// LoadXLSX reads one worksheet: cell text, merged ranges, custom column
// widths and row heights, and frozen panes.
func LoadXLSX(filename, sheet string) (Seed, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return Seed{}, errors.Newf("open %s", filename).Wrap(err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return Seed{}, errors.Newf("sheet %q not found in %s", sheet, filename)
	}

	seed := newSeed(sheet)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Seed{}, errors.Newf("read rows of %s", sheet).Wrap(err)
	}
	for r, row := range rows {
		for c, val := range row {
			seed.set(r, c, val)
		}
	}

	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		return Seed{}, errors.Newf("read merged cells of %s", sheet).Wrap(err)
	}
	for _, mc := range merged {
		rng, ok := grid.ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if !ok {
			continue
		}
		seed.Merges = append(seed.Merges, rng)
		seed.Rows = max(seed.Rows, rng.EndRow+1)
		seed.Cols = max(seed.Cols, rng.EndCol+1)
	}

	for c := 0; c < seed.Cols; c++ {
		w, err := f.GetColWidth(sheet, grid.ColToName(c))
		if err != nil {
			return Seed{}, errors.Newf("read width of column %s", grid.ColToName(c)).Wrap(err)
		}
		if w != defaultColChars {
			seed.ColWidths[c] = colPixels(w)
		}
	}
	for r := 0; r < seed.Rows; r++ {
		h, err := f.GetRowHeight(sheet, r+1)
		if err != nil {
			return Seed{}, errors.Newf("read height of row %d", r+1).Wrap(err)
		}
		if h != defaultRowPoints {
			seed.RowHeights[r] = rowPixels(h)
		}
	}

	panes, err := f.GetPanes(sheet)
	if err != nil {
		return Seed{}, errors.Newf("read panes of %s", sheet).Wrap(err)
	}
	if panes.Freeze {
		seed.FreezeRows = panes.YSplit
		seed.FreezeCols = panes.XSplit
	}
	return seed, nil
}

// colPixels converts a width in characters of the default font to pixels.
func colPixels(chars float64) float64 {
	return math.Round(chars*7 + 5)
}

// rowPixels converts points to pixels at 96 dpi.
func rowPixels(points float64) float64 {
	return math.Round(points * 4 / 3)
}
