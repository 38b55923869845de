package tablex

import (
	"io"

	"github.com/tsawler/tablex/csvout"
	"github.com/tsawler/tablex/model"
	"github.com/tsawler/tablex/source"
	"github.com/tsawler/tablex/tables"
)

// Extractor provides a fluent interface for extracting tables from an HTML
// source. Each configuration method returns a new Extractor instance,
// making chains safe to fork and reuse.
type Extractor struct {
	// Source
	source   string
	html     string
	haveHTML bool

	// Configuration
	options ExtractOptions
}

// clone creates a copy of the Extractor with its own options. Each chain
// method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		source:   e.source,
		html:     e.html,
		haveHTML: e.haveHTML,
		options:  e.options.clone(),
	}
}

// Debug attaches a writer that receives a trace of grid construction while
// tables are normalized.
//
// Example:
//
//	tables, err := tablex.Open("report.html").Debug(os.Stdout).Tables()
func (e *Extractor) Debug(w io.Writer) *Extractor {
	ne := e.clone()
	ne.options.debugWriter = w
	return ne
}

// ensureHTML loads and caches the source text if it is not in memory yet.
func (e *Extractor) ensureHTML() error {
	if e.haveHTML {
		return nil
	}

	text, err := source.Load(e.source)
	if err != nil {
		return err
	}
	e.html = text
	e.haveHTML = true
	return nil
}

// HTML loads the source if necessary and returns the raw HTML text.
func (e *Extractor) HTML() (string, error) {
	if err := e.ensureHTML(); err != nil {
		return "", err
	}
	return e.html, nil
}

// Tables loads the source if necessary and returns every table in the
// document as a rectangular grid, in pre-order of the nesting relation:
// each table precedes the tables nested inside its cells.
func (e *Extractor) Tables() ([]*model.Table, error) {
	if err := e.ensureHTML(); err != nil {
		return nil, err
	}

	nz := tables.NewNormalizer()
	if e.options.debugWriter != nil {
		nz.Trace = tables.NewTracer(e.options.debugWriter)
	}
	return nz.Normalize(e.html)
}

// WriteCSV extracts the tables and writes one CSV file per table into dir,
// creating it if missing. It returns the number of tables written; zero
// tables is not an error and writes nothing.
func (e *Extractor) WriteCSV(dir string) (int, error) {
	tbls, err := e.Tables()
	if err != nil {
		return 0, err
	}
	if len(tbls) == 0 {
		return 0, nil
	}

	if err := csvout.Write(tbls, dir); err != nil {
		return 0, err
	}
	return len(tbls), nil
}
