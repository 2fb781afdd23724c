package frame

import (
	"encoding/json"
	"math"
	"time"
)

// Record is one cell of a table in long form.
type Record struct {
	Step     int       `json:"step"`
	Time     time.Time `json:"time"`
	Variable string    `json:"variable"`
	Value    float64   `json:"value"`
}

// MarshalJSON writes a NaN or infinite value as null.
func (r Record) MarshalJSON() ([]byte, error) {
	type record Record
	out := struct {
		record
		Value *float64 `json:"value"`
	}{record: record(r)}
	if !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0) {
		out.Value = &r.Value
	}
	return json.Marshal(out)
}

// Melt converts the table to long form. Records are grouped by column in
// column order, and by step within a column.
func (t *Table) Melt() []Record {
	result := make([]Record, 0, t.rows*len(t.columns))
	for _, c := range t.columns {
		for i, v := range c.Values {
			r := Record{
				Step:     i,
				Variable: c.Name,
				Value:    v,
			}
			if t.Times != nil {
				r.Time = t.Times[i]
			}
			result = append(result, r)
		}
	}
	return result
}

// Group splits long-form records by variable, preserving the order in which
// each variable first appears.
func Group(records []Record) (names []string, groups map[string][]Record) {
	groups = make(map[string][]Record)
	for _, r := range records {
		if _, ok := groups[r.Variable]; !ok {
			names = append(names, r.Variable)
		}
		groups[r.Variable] = append(groups[r.Variable], r)
	}
	return names, groups
}
