// Package tablex extracts tables from HTML documents and writes them as CSV.
//
// Tables are discovered anywhere in the document, including tables nested
// inside the cells of other tables, and each is normalized into a
// rectangular grid that reflects the document's colspan/rowspan merge
// semantics: a merged cell contributes its text to exactly one slot, and
// the remaining slots it covers emit as empty strings.
//
// Basic usage:
//
//	tables, err := tablex.Open("report.html").Tables()
//	if err != nil {
//	    // handle error
//	}
//
// Sources may also be URLs, and results can be written straight to disk:
//
//	n, err := tablex.Open("https://example.com/stats").WriteCSV("out")
//
// With a debug trace of grid construction:
//
//	tables, err := tablex.FromString(html).Debug(os.Stdout).Tables()
//
// For advanced use cases, the lower-level tables and htmldoc packages are
// also available.
package tablex

// Open returns an Extractor for the given source, which may be a
// filesystem path or an http(s) URL. Nothing is loaded until a terminal
// operation such as Tables or WriteCSV runs.
func Open(source string) *Extractor {
	return &Extractor{
		source:  source,
		options: defaultOptions(),
	}
}

// FromString returns an Extractor over HTML text already in memory.
func FromString(html string) *Extractor {
	return &Extractor{
		html:     html,
		haveHTML: true,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	tables := tablex.Must(tablex.Open("report.html").Tables())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
