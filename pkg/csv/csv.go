// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package csv reads numeric columns out of CSV files for validation input.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a malformed cell or a missing column.
type ParseError struct {
	Path     string
	Row, Col int // 1-based row (including header), 0-based column.
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: row %v, column %v: %v", e.Path, e.Row, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Columns reads the selected columns of a CSV file, one sample per column,
// in the order the columns are given. The first row is treated as a header
// and skipped.
func Columns(path string, cols ...int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rdr := stdcsv.NewReader(f)
	rdr.FieldsPerRecord = -1 // Column presence is checked per selected column.
	records, err := rdr.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	out := make([][]float64, len(cols))
	for i := range out {
		out[i] = []float64{}
	}
	for row, record := range records {
		if row == 0 {
			continue // Header.
		}
		for i, col := range cols {
			if col < 0 || col >= len(record) {
				return nil, &ParseError{Path: path, Row: row + 1, Col: col,
					Err: fmt.Errorf("missing column: row has %v fields", len(record))}
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
			if err != nil {
				return nil, &ParseError{Path: path, Row: row + 1, Col: col, Err: err}
			}
			out[i] = append(out[i], v)
		}
	}
	return out, nil
}
