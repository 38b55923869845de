package tables

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/tablex/model"
)

// Tracer renders working-grid construction to a writer: one line per
// committed row plus a summary line per finished table. All methods are
// safe to call on a nil Tracer, which makes tracing a no-op.
type Tracer struct {
	w          io.Writer
	rowStyle   lipgloss.Style
	tableStyle lipgloss.Style
}

// NewTracer creates a Tracer writing to w. Styling follows the detected
// terminal color profile and degrades to plain text elsewhere.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{
		w:          w,
		rowStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		tableStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Row renders one committed row: the table width so far and each occupied
// slot as ['text', colspan, rowspan]. Empty slots render blank.
func (t *Tracer) Row(maxColumns int, row []*model.Cell) {
	if t == nil {
		return
	}

	parts := make([]string, len(row))
	for i, c := range row {
		if c != nil {
			parts[i] = fmt.Sprintf("['%s', %d, %d]", c.Text, c.ColSpan, c.RowSpan)
		}
	}

	line := fmt.Sprintf("Columns: %d, Cells: %s", maxColumns, strings.Join(parts, ", "))
	fmt.Fprintln(t.w, t.rowStyle.Render(line))
}

// Table renders a summary line for a finished table.
func (t *Tracer) Table(table *model.Table) {
	if t == nil {
		return
	}

	line := fmt.Sprintf("Table committed: %d rows x %d columns", table.RowCount(), table.ColCount())
	fmt.Fprintln(t.w, t.tableStyle.Render(line))
}
