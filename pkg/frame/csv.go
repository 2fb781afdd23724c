package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/coldregions/hffplots/pkg/timetricks"
)

// ReadCSV reads a table whose first column is the index and whose header row
// names the columns. If every index cell parses as a timestamp the table is
// time-indexed (in loc), otherwise it is indexed by step. Empty value cells
// are read as NaN.
func ReadCSV(r io.Reader, loc *time.Location) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header has %d fields, need an index and at least one column", len(header))
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	values := make([][]float64, len(header)-1)
	for j := range values {
		values[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		for j, cell := range row[1:] {
			v, err := parseCell(cell)
			if err != nil {
				// Row numbers are 1-based and count the header.
				return nil, fmt.Errorf("row %d column %q: %w", i+2, header[j+1], err)
			}
			values[j][i] = v
		}
	}

	t := New(parseTimes(rows, loc))
	if t.Times == nil {
		t = NewSteps(len(rows))
	}
	for j, name := range header[1:] {
		if err := t.Add(strings.TrimSpace(name), values[j]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseTimes returns nil unless every index cell is a timestamp.
func parseTimes(rows [][]string, loc *time.Location) []time.Time {
	times := make([]time.Time, len(rows))
	for i, row := range rows {
		t, err := timetricks.ParseIndex(row[0], loc)
		if err != nil {
			return nil
		}
		times[i] = t
	}
	return times
}
