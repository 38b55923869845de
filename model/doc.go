// Package model provides the data structures shared by the tablex packages.
//
// The [Table] type is the user-facing result of normalization: a rectangular,
// row-major grid of strings in which empty slots encode the coverage of
// merged cells. The [Cell] type is the working unit used while a table is
// being normalized; it carries the text together with the colspan and
// rowspan declared on the source element.
//
// # Tables
//
// Every [Table] produced by this module is rectangular: all rows have the
// same length, equal to the widest row observed in the source table. A cell
// declared with colspan c contributes its text to exactly one slot; the
// remaining c-1 slots in that row are empty strings. A cell declared with
// rowspan r likewise contributes empty slots at its column in the following
// r-1 rows.
//
// Export helpers are available for common sinks:
//
//   - [Table.ToMarkdown] - pipe-delimited markdown table
//   - [Table.ToTSV] - tab-separated rows
package model
