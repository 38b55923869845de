package tables

import "github.com/tsawler/tablex/model"

// grid is the working grid built row by row while a source table is walked.
// Each slot is either occupied by a cell or empty (nil); empty slots emit
// as empty strings. The width grows monotonically as wider rows are
// committed.
type grid struct {
	rows       [][]*model.Cell
	maxColumns int
}

// carryForward starts a new row by re-emitting placeholders for rowspans
// still active in the last committed row. A placeholder keeps the colspan
// of its principal cell and a decremented rowspan, so the chain extends one
// row at a time. Returns the new row and the column cursor after the
// placeholders.
func (g *grid) carryForward() ([]*model.Cell, int) {
	row := make([]*model.Cell, 0)
	colIndex := 0

	if len(g.rows) == 0 {
		return row, colIndex
	}

	last := g.rows[len(g.rows)-1]
	for colIndex < g.maxColumns && colIndex < len(last) {
		prev := last[colIndex]
		if prev == nil || prev.RowSpan <= 1 {
			break
		}
		row = append(row, &model.Cell{ColSpan: prev.ColSpan, RowSpan: prev.RowSpan - 1})
		colIndex += prev.ColSpan
	}

	return row, colIndex
}

// commit widens the table if the row's final column cursor exceeds the
// widest row seen so far, right-pads the row with empty slots, and appends
// it to the grid.
func (g *grid) commit(row []*model.Cell, colIndex int) []*model.Cell {
	if colIndex > g.maxColumns {
		g.maxColumns = colIndex
	}
	for len(row) < g.maxColumns {
		row = append(row, nil)
	}
	g.rows = append(g.rows, row)
	return row
}

// finalize maps the grid to its rectangular string form: occupied slots
// emit their text, empty slots emit empty strings, and every row is sized
// to the table width. A grid with no rows yields nil.
func (g *grid) finalize() *model.Table {
	if len(g.rows) == 0 {
		return nil
	}

	table := model.NewTable()
	for _, row := range g.rows {
		cells := make([]string, g.maxColumns)
		for j, c := range row {
			if c != nil {
				cells[j] = c.Text
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}
