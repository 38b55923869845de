package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Counts(t *testing.T) {
	table := &Table{Rows: [][]string{{"a", "b", "c"}, {"d", "e", "f"}}}
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, 3, table.ColCount())

	empty := NewTable()
	assert.Equal(t, 0, empty.RowCount())
	assert.Equal(t, 0, empty.ColCount())
}

func TestTable_ToTSV(t *testing.T) {
	table := &Table{Rows: [][]string{{"a", "b"}, {"c", ""}}}
	assert.Equal(t, "a\tb\nc\t\n", table.ToTSV())
}

func TestTable_ToMarkdown(t *testing.T) {
	table := &Table{Rows: [][]string{{"Name", "Qty"}, {"ab|cd", "2"}}}

	want := "| Name | Qty |\n" +
		"|---|---|\n" +
		"| ab\\|cd | 2 |\n"
	assert.Equal(t, want, table.ToMarkdown())
}

func TestTable_ToMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "", NewTable().ToMarkdown())
}
