package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, text string) *html.Node {
	t.Helper()
	doc, err := Parse(text)
	require.NoError(t, err)
	return doc.Root()
}

func TestTables_StopsAtNestedTables(t *testing.T) {
	root := parseDoc(t, `
	<body>
		<table id="outer">
			<tr><td>
				<table id="inner"><tr><td>x</td></tr></table>
			</td></tr>
		</table>
		<table id="second"><tr><td>y</td></tr></table>
	</body>`)

	tbls := Tables(root)
	require.Len(t, tbls, 2)

	id, _ := Attr(tbls[0], "id")
	assert.Equal(t, "outer", id)
	id, _ = Attr(tbls[1], "id")
	assert.Equal(t, "second", id)

	// The inner table is reachable by walking from the outer table's cell.
	cells := Cells(Rows(tbls[0])[0])
	require.Len(t, cells, 1)
	inner := Tables(cells[0])
	require.Len(t, inner, 1)
	id, _ = Attr(inner[0], "id")
	assert.Equal(t, "inner", id)
}

func TestRows_ExcludesNestedTableRows(t *testing.T) {
	root := parseDoc(t, `
	<table id="outer">
		<thead><tr><th>H</th></tr></thead>
		<tbody>
			<tr><td>
				<table><tr><td>nested row</td></tr><tr><td>another</td></tr></table>
			</td></tr>
			<tr><td>last</td></tr>
		</tbody>
	</table>`)

	outer := Tables(root)[0]
	rows := Rows(outer)
	assert.Len(t, rows, 3)
}

func TestCells_DirectChildrenOnly(t *testing.T) {
	root := parseDoc(t, `<table><tr><td>a</td><th>b</th><td>c</td></tr></table>`)

	rows := Rows(Tables(root)[0])
	require.Len(t, rows, 1)

	cells := Cells(rows[0])
	require.Len(t, cells, 3)
	assert.Equal(t, "td", cells[0].Data)
	assert.Equal(t, "th", cells[1].Data)
}

func TestAttr(t *testing.T) {
	root := parseDoc(t, `<table><tr><td colspan="3">x</td></tr></table>`)
	cell := Cells(Rows(Tables(root)[0])[0])[0]

	val, ok := Attr(cell, "colspan")
	assert.True(t, ok)
	assert.Equal(t, "3", val)

	_, ok = Attr(cell, "rowspan")
	assert.False(t, ok)
}

func TestText_BoundariesUntouched(t *testing.T) {
	root := parseDoc(t, `<table><tr><td> a <b>b</b> c </td></tr></table>`)
	cell := Cells(Rows(Tables(root)[0])[0])[0]

	assert.Equal(t, " a b c ", Text(cell))
}

func TestTextExcluding_SkipsSubtree(t *testing.T) {
	root := parseDoc(t, `<table><tr><td>keep <table><tr><td>drop</td></tr></table>this</td></tr></table>`)
	cell := Cells(Rows(Tables(root)[0])[0])[0]

	assert.Equal(t, "keep this", TextExcluding(cell, "table"))
	assert.Contains(t, Text(cell), "drop")
}
