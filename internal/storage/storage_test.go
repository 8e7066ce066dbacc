package storage

import (
	"os"
	"path/filepath"
	"testing"

	"gridview/internal/grid"

	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	data := "name,qty\nbolt,4\n,\nnut,10,extra\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	seed, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if seed.Rows != 4 || seed.Cols != 3 {
		t.Errorf("extent = %dx%d, expected 4x3", seed.Rows, seed.Cols)
	}
	tests := []struct {
		row, col int
		expected string
	}{
		{0, 0, "name"},
		{1, 1, "4"},
		{3, 2, "extra"},
		{2, 0, ""},
	}
	for _, tt := range tests {
		if got := seed.Cells.Text(tt.row, tt.col); got != tt.expected {
			t.Errorf("cell (%d, %d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
		}
	}
	if _, ok := seed.Cells.Get(2, 0); ok {
		t.Error("empty field stored a cell")
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "title")
	f.SetCellValue(sheet, "B2", "merged")
	f.SetCellValue(sheet, "D4", 42)
	if err := f.MergeCell(sheet, "B2", "C3"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 20); err != nil {
		t.Fatal(err)
	}
	if err := f.SetRowHeight(sheet, 2, 30); err != nil {
		t.Fatal(err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      2,
		TopLeftCell: "B3",
		ActivePane:  "bottomRight",
	}); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	seed, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if seed.Name != sheet {
		t.Errorf("Name = %q", seed.Name)
	}
	if seed.Cells.Text(0, 0) != "title" || seed.Cells.Text(3, 3) != "42" {
		t.Errorf("cells = %q, %q", seed.Cells.Text(0, 0), seed.Cells.Text(3, 3))
	}
	if seed.Rows != 4 || seed.Cols != 4 {
		t.Errorf("extent = %dx%d", seed.Rows, seed.Cols)
	}
	if len(seed.Merges) != 1 || seed.Merges[0] != grid.NewRange(1, 1, 2, 2) {
		t.Errorf("Merges = %v", seed.Merges)
	}
	if len(seed.ColWidths) != 1 || seed.ColWidths[1] != 145 {
		t.Errorf("ColWidths = %v", seed.ColWidths)
	}
	if len(seed.RowHeights) != 1 || seed.RowHeights[1] != 40 {
		t.Errorf("RowHeights = %v", seed.RowHeights)
	}
	if seed.FreezeRows != 2 || seed.FreezeCols != 1 {
		t.Errorf("freeze = %d rows, %d cols", seed.FreezeRows, seed.FreezeCols)
	}
}

func TestLoadXLSXUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadXLSX(path, "Missing"); err == nil {
		t.Error("expected an error for a missing sheet")
	}
}

func TestLoadUnsupported(t *testing.T) {
	if _, err := Load("notes.txt", ""); err == nil {
		t.Error("expected an error for .txt")
	}
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
