package sunset

import (
	"time"

	"github.com/coldregions/hffplots/pkg/timetricks"

	"github.com/keep94/sunrise"
)

// Daylight returns the ordered daylight intervals for every calendar day from
// start to end at place. Days without a sunrise or sunset (polar day or night)
// are skipped.
func Daylight(start, end time.Time, place Place) []Interval {
	if place.Location != nil {
		start = start.In(place.Location)
		end = end.In(place.Location)
	}
	days := timetricks.Days(start, end)
	day := timetricks.TrimClock(start)

	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, day)
	// The sunrise package picks a sunrise near day, which may fall on the
	// neighboring day. Zero times mean there is no sunrise at all.
	if rise := s.Sunrise(); !rise.IsZero() {
		if rise.Before(day) {
			s.AddDays(1)
		} else if !rise.Before(day.AddDate(0, 0, 1)) {
			s.AddDays(-1)
		}
	}

	result := make([]Interval, 0, days)
	for i := 0; i < days; i++ {
		rise, set := s.Sunrise(), s.Sunset()
		if !rise.IsZero() && !set.IsZero() && rise.Before(set) {
			if place.Location != nil {
				rise, set = rise.In(place.Location), set.In(place.Location)
			}
			result = append(result, Interval{Sunrise: rise, Sunset: set})
		}
		s.AddDays(1)
	}
	return result
}
