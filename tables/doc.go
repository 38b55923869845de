// Package tables normalizes HTML tables into rectangular grids.
//
// This package implements the core algorithm of the module: translating a
// sequence of tr/td/th elements with arbitrary colspan and rowspan
// attributes, possibly containing nested tables, into rectangular row-major
// grids whose empty slots encode the coverage of merged cells.
//
// # Normalization
//
// Normalization is performed by a [Normalizer]:
//
//	nz := tables.NewNormalizer()
//	tbls, err := nz.Normalize(htmlText)
//
// Each table is walked row by row into a working grid. For every row the
// algorithm:
//
//  1. Re-emits placeholders for rowspans still active in the previous row
//  2. Skips columns reserved by earlier placements
//  3. Places each source cell, expanding it across its colspan
//  4. Pads the row to the widest row observed so far
//
// A placeholder carries the same colspan as its principal cell and a
// decremented rowspan, so a rowspan chain extends exactly one row at a
// time and a rowspan outliving the table silently expires.
//
// # Nested tables
//
// A table found inside a cell is normalized independently and emitted after
// its enclosing table; the enclosing cell still contributes its declared
// span to the enclosing row, with the nested table's content excluded from
// its text. The output order over the whole document is a pre-order
// traversal of the nesting relation, siblings in document order.
//
// # Span handling
//
// colspan and rowspan values that are missing, unparseable, zero, or
// negative are treated as 1. Overlapping merges are not an error; a colspan
// running over an existing cell overwrites the later slot.
//
// # Tracing
//
// Attach a [Tracer] to observe grid construction:
//
//	nz.Trace = tables.NewTracer(os.Stdout)
//
// The tracer prints one line per committed row showing the table width and
// the occupied slots, plus a summary line per finished table.
package tables
