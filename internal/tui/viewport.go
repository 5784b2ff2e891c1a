package tui

import "math"

// statusRows are the rows under the field: status line and hint line.
const statusRows = 2

// Viewport maps the playfield onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows    int // cells used by the field
	Width, Height float64
}

// NewViewport fits a width×height field into a terminal of cols×rows cells,
// leaving room for the status rows.
func NewViewport(cols, rows int, width, height float64) Viewport {
	return Viewport{
		Cols:   max(cols, 1),
		Rows:   max(rows-statusRows, 1),
		Width:  width,
		Height: height,
	}
}

// ToCell returns the cell covering field point (x, y), clamped to the grid.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / v.Width * float64(v.Cols)))
	row = int(math.Floor(y / v.Height * float64(v.Rows)))
	return min(max(col, 0), v.Cols-1), min(max(row, 0), v.Rows-1)
}

// ToField returns the field point at the center of a cell.
func (v Viewport) ToField(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * v.Width / float64(v.Cols)
	y = (float64(row) + 0.5) * v.Height / float64(v.Rows)
	return x, y
}

// Contains reports whether a cell lies on the field.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
