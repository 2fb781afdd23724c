package timetricks

import (
	"fmt"
	"testing"
	"time"
)

func TestParseIndex(t *testing.T) {
	want := time.Date(2024, time.December, 27, 13, 0, 0, 0, time.UTC)
	table := []string{
		"2024-12-27T13:00:00Z",
		"2024-12-27 13:00:00",
		"2024-12-27T13:00:00",
		"2024-12-27 13:00",
		"12/27/2024 13:00",
		" 2024-12-27 13:00 ",
	}

	for _, in := range table {
		t.Run(in, func(t *testing.T) {
			got, err := ParseIndex(in, time.UTC)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("got %s, wanted %s", got, want)
			}
		})
	}
}

func TestParseIndexRejectsSteps(t *testing.T) {
	for _, in := range []string{"0", "17", "", "tuesday"} {
		if _, err := ParseIndex(in, time.UTC); err == nil {
			t.Errorf("ParseIndex(%q) succeeded, wanted error", in)
		}
	}
}

func ExampleDays() {
	start := time.Date(2024, time.December, 27, 18, 0, 0, 0, time.UTC)
	fmt.Println(Days(start, start.Add(time.Hour)))
	fmt.Println(Days(start, start.Add(12*time.Hour)))
	fmt.Println(Days(start, start.Add(-time.Hour)))
	// Output:
	// 1
	// 2
	// 0
}
