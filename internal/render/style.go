package render

import "gridview/internal/grid"

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	VAlignMiddle VAlign = iota
	VAlignTop
	VAlignBottom
)

type Font struct {
	Name   string
	Size   float64
	Bold   bool
	Italic bool
}

// Border holds the four edges of a cell box.
type Border struct {
	Top, Right, Bottom, Left Stroke
}

// Style is the look of one cell. An empty Background means no fill.
type Style struct {
	Background string
	Color      string
	Font       Font
	Align      Align
	VAlign     VAlign
	Border     Border
	Underline  bool
	Strike     bool
}

// DefaultStyle is what a cell without a style index gets.
func DefaultStyle() Style {
	return Style{
		Color: "#0a0a0a",
		Font:  Font{Name: "Arial", Size: 10},
	}
}

// StyleResolver yields the style of a cell.
type StyleResolver interface {
	StyleFor(row, col int) Style
}

// TextFormatter turns a cell into the string displayed for it.
type TextFormatter interface {
	RenderText(c grid.Cell) string
}

// StyleTable is the list of styles cells refer to by 1-based index.
type StyleTable struct {
	styles []Style
}

func NewStyleTable() *StyleTable { return &StyleTable{} }

// Add appends st, or finds an identical entry, and returns its index.
func (t *StyleTable) Add(st Style) int {
	for i, s := range t.styles {
		if s == st {
			return i + 1
		}
	}
	t.styles = append(t.styles, st)
	return len(t.styles)
}

// Get returns the style at index i; 0 and unknown indices give DefaultStyle.
func (t *StyleTable) Get(i int) Style {
	if i <= 0 || i > len(t.styles) {
		return DefaultStyle()
	}
	return t.styles[i-1]
}

func (t *StyleTable) Len() int { return len(t.styles) }

// CellStyles resolves styles through the Style index stored on each cell.
type CellStyles struct {
	Cells *grid.Store
	Table *StyleTable
}

func (c CellStyles) StyleFor(row, col int) Style {
	return c.Table.Get(c.Cells.Cell(row, col).Style)
}

// PlainText displays cell text unchanged.
type PlainText struct{}

func (PlainText) RenderText(c grid.Cell) string { return c.Text }
