package timetricks

import (
	"fmt"
	"strings"
	"time"
)

const (
	dayFormat = "20060102"
)

// indexLayouts are the timestamp layouts accepted for a table's index column,
// most specific first.
var indexLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
	"2006-01-02",
}

// ParseIndex reads a table index cell as a time in loc. Layouts without a zone
// are interpreted in loc.
func ParseIndex(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range indexLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("index %q matches no known time layout", s)
}

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

func TrimClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Days returns the number of calendar days touched by [start, end].
func Days(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	n := 1
	for d := TrimClock(start); !SameDay(d, end); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}
