package tables

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/tablex/htmldoc"
	"github.com/tsawler/tablex/model"
)

// Normalizer converts the tables of an HTML document into rectangular
// grids. The zero value is ready to use.
type Normalizer struct {
	// Trace receives a rendering of each committed row and each finished
	// table. Nil disables tracing.
	Trace *Tracer
}

// NewNormalizer creates a Normalizer with tracing disabled.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize parses htmlText and returns every table in the document as a
// rectangular grid. The order is a pre-order traversal of the nesting
// relation: a table precedes the tables nested inside its cells, and
// siblings keep document order. Tables with no rows are omitted.
//
// Normalize is pure: it performs no I/O and the same input always yields
// the same output.
func (nz *Normalizer) Normalize(htmlText string) ([]*model.Table, error) {
	doc, err := htmldoc.Parse(htmlText)
	if err != nil {
		return nil, err
	}

	tables := make([]*model.Table, 0)
	nz.collect(doc.Root(), &tables)
	return tables, nil
}

// collect normalizes every table beneath root, appending results in
// pre-order.
func (nz *Normalizer) collect(root *html.Node, out *[]*model.Table) {
	for _, node := range htmldoc.Tables(root) {
		table, nested := nz.normalizeTable(node)
		if table != nil {
			*out = append(*out, table)
		}
		*out = append(*out, nested...)
	}
}

// normalizeTable runs the single-table algorithm over one table element. It
// returns the table's grid (nil when the table has no rows) together with
// any tables discovered nested inside its cells, in encounter order.
func (nz *Normalizer) normalizeTable(tableNode *html.Node) (*model.Table, []*model.Table) {
	var g grid
	var nested []*model.Table

	for _, tr := range htmldoc.Rows(tableNode) {
		row, colIndex := g.carryForward()

		for _, cell := range htmldoc.Cells(tr) {
			// A cell may enclose nested tables. They are normalized
			// independently; the cell itself still occupies its declared
			// span in this row, with the nested content excluded from its
			// text.
			if len(htmldoc.Tables(cell)) > 0 {
				nz.recurse(cell, &nested)
			}

			// Skip columns reserved by earlier placements in this row.
			for colIndex < len(row) && row[colIndex] != nil {
				colIndex++
			}

			c := model.Cell{
				Text:    strings.TrimSpace(htmldoc.TextExcluding(cell, "table")),
				ColSpan: spanAttr(cell, "colspan"),
				RowSpan: spanAttr(cell, "rowspan"),
			}

			// The principal slot carries the text; the remaining colspan-1
			// slots stay empty. A colspan running over an existing cell
			// overwrites the later slot.
			for k := 0; k < c.ColSpan; k++ {
				var slot *model.Cell
				if k == 0 {
					principal := c
					slot = &principal
				}
				if colIndex >= len(row) {
					row = append(row, slot)
				} else {
					row[colIndex] = slot
				}
				colIndex++
			}
		}

		row = g.commit(row, colIndex)
		nz.Trace.Row(g.maxColumns, row)
	}

	table := g.finalize()
	if table != nil {
		nz.Trace.Table(table)
	}
	return table, nested
}

// recurse serializes the cell, re-parses it as a fragment, and normalizes
// the tables found inside it.
func (nz *Normalizer) recurse(cell *html.Node, nested *[]*model.Table) {
	fragment, err := htmldoc.Render(cell)
	if err != nil {
		return
	}
	doc, err := htmldoc.ParseFragment(fragment)
	if err != nil {
		return
	}
	nz.collect(doc.Root(), nested)
}

// spanAttr reads a colspan or rowspan attribute. Missing, unparseable,
// zero, and negative values are all treated as 1.
func spanAttr(n *html.Node, key string) int {
	val, ok := htmldoc.Attr(n, key)
	if !ok {
		return 1
	}
	span, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || span < 1 {
		return 1
	}
	return span
}
