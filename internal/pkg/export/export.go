// Package export serializes filtered list rows into downloadable xlsx files.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column maps one output column: its header label and how to derive the cell
// value from a record. Value funcs may close over side collections, e.g. a
// package-id to package-name map.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Sheet builds a single-worksheet file: one header row, then one row per
// record in the given order. Callers pass the filtered, sorted, un-paginated
// rows so the export always covers every matching record, not just the
// visible page.
func Sheet[T any](name string, cols []Column[T], rows []T) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	for c, col := range cols {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(name, cell, col.Header); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for c, col := range cols {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(name, cell, col.Value(row)); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// FileName builds a timestamped download name like "packages-20240501-1204.xlsx".
func FileName(prefix string) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().Format("20060102-1504"))
}
