// Package table models the column layout of a time series table whose
// columns carry a multi-level header, and reads that layout from CSV files
// exported with one header row per level.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Header is the header tuple of one column, one value per header level.
type Header []string

// Table is the ordered list of column headers of a dataset.
type Table struct {
	Columns []Header
}

// New returns a table with the given columns.
func New(columns ...Header) *Table {
	return &Table{Columns: columns}
}

// Zip pairs each level name with the corresponding value of the header.
// Surplus names or values are ignored.
func (h Header) Zip(levels []string) map[string]string {
	n := min(len(levels), len(h))
	out := make(map[string]string, n)
	for i := 0; i < n; i++ {
		out[levels[i]] = h[i]
	}
	return out
}

// First returns the value of the top header level, or "" for an empty header.
func (h Header) First() string {
	if len(h) == 0 {
		return ""
	}
	return h[0]
}

// String joins the header values with a slash, e.g. "DE_KN_residential1/pv".
func (h Header) String() string {
	return strings.Join(h, "/")
}

// ErrShortHeader is returned when a file holds fewer rows than header levels.
var ErrShortHeader = errors.New("not enough header rows")

// ReadMultiIndexCSV reads the first levels records of r as header rows and
// returns the resulting column layout. Data rows are not read.
func ReadMultiIndexCSV(r io.Reader, levels int) (*Table, error) {
	if levels < 1 {
		return nil, fmt.Errorf("invalid number of header levels: %d", levels)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	rows := make([][]string, 0, levels)
	for len(rows) < levels {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: expected %d, found %d", ErrShortHeader, levels, len(rows))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read header row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}

	columns := make([]Header, len(rows[0]))
	for i := range columns {
		col := make(Header, levels)
		for level, row := range rows {
			col[level] = strings.TrimSpace(row[i])
		}
		columns[i] = col
	}
	return New(columns...), nil
}

// ReadMultiIndexCSVFile opens path and reads its column layout with
// ReadMultiIndexCSV.
func ReadMultiIndexCSVFile(path string, levels int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadMultiIndexCSV(f, levels)
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return t, nil
}
