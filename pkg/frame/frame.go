package frame

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrDuplicate     = errors.New("duplicate column")
	ErrLength        = errors.New("column length does not match index")
	ErrEmpty         = errors.New("empty table")
)

// Column is a named series of values.
type Column struct {
	Name   string
	Values []float64
}

// Table is a wide-form table keyed by a time index. When Times is nil the rows
// are keyed by their step number instead.
type Table struct {
	Times []time.Time

	rows    int
	columns []Column
	byName  map[string]int
}

// New creates a table indexed by times.
func New(times []time.Time) *Table {
	return &Table{
		Times:  times,
		rows:   len(times),
		byName: make(map[string]int),
	}
}

// NewSteps creates a table of n rows indexed by step number.
func NewSteps(n int) *Table {
	return &Table{
		rows:   n,
		byName: make(map[string]int),
	}
}

// Add appends a column. Values must have one entry per row.
func (t *Table) Add(name string, values []float64) error {
	if _, ok := t.byName[name]; ok {
		return fmt.Errorf("%w %q", ErrDuplicate, name)
	}
	if len(values) != t.rows {
		return fmt.Errorf("%w: %q has %d values, index has %d", ErrLength, name, len(values), t.rows)
	}
	t.byName[name] = len(t.columns)
	t.columns = append(t.columns, Column{Name: name, Values: values})
	return nil
}

// Len is the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// TimeIndexed reports whether rows are keyed by time rather than step.
func (t *Table) TimeIndexed() bool {
	return t.Times != nil
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in insertion order.
func (t *Table) Columns() []Column {
	return t.columns
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	return t.columns[i], nil
}

// Series returns the named column together with the table's index.
func (t *Table) Series(name string) (Series, error) {
	c, err := t.Column(name)
	if err != nil {
		return Series{}, err
	}
	return Series{Name: c.Name, Times: t.Times, Values: c.Values}, nil
}

// X returns the x coordinate of row i: unix seconds for time-indexed tables,
// the step number otherwise.
func (t *Table) X(i int) float64 {
	if t.Times != nil {
		return float64(t.Times[i].Unix())
	}
	return float64(i)
}

// Series is a single column with its index.
type Series struct {
	Name   string
	Times  []time.Time
	Values []float64
}

// Table wraps the series into a one-column table.
func (s Series) Table() (*Table, error) {
	var t *Table
	if s.Times != nil {
		t = New(s.Times)
	} else {
		t = NewSteps(len(s.Values))
	}
	if err := t.Add(s.Name, s.Values); err != nil {
		return nil, err
	}
	return t, nil
}
