package termdoc

import "io"

// Cell is the content of one table cell: an ordered sequence of Text units
// painted adjacently with no separator. This is how mixed styling within a
// single cell is achieved.
type Cell []Text

// Table is an ordered sequence of rows, each an ordered sequence of cells.
// Rows may have different lengths; missing trailing cells are simply absent
// when the table is painted.
//
// Cell content must not contain tab or newline characters, since painting
// uses them as cell and row delimiters.
type Table struct {
	Rows [][]Cell
}

// NewTable builds a table from rows of cells.
func NewTable(rows [][]Cell) *Table {
	return &Table{Rows: rows}
}

// SetPlain clears all styling from every cell of every row. Idempotent.
func (t *Table) SetPlain() {
	for _, row := range t.Rows {
		for _, cell := range row {
			for i := range cell {
				cell[i].SetPlain()
			}
		}
	}
}

// Paint renders the table, styled and column-aligned, into w.
func (t *Table) Paint(w io.Writer) error {
	return NewPainter().paintTable(w, t)
}

func (t *Table) isEl() {}
