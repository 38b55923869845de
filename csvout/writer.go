// Package csvout writes normalized tables to CSV files.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/tsawler/tablex/model"
)

// Write writes one CSV file per table into dir, creating the directory and
// any missing parents first. Files are named table_1.csv, table_2.csv, and
// so on in table order; existing files of the same name are overwritten.
func Write(tables []*model.Table, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", dir)
	}

	for i, table := range tables {
		filename := filepath.Join(dir, fmt.Sprintf("table_%d.csv", i+1))
		if err := writeTable(table, filename); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(table *model.Table, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}

	w := csv.NewWriter(f)
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return errors.Wrapf(err, "writing record to %s", filename)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Wrapf(err, "flushing %s", filename)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", filename)
	}
	return nil
}
