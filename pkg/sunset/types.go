package sunset

import (
	"fmt"
	"time"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Name      string
	Lat, Long float64
	Location  *time.Location
}

// NewPlace resolves the time zone name and builds a Place.
func NewPlace(name string, lat, long float64, tz string) (Place, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Place{}, fmt.Errorf("unknown time zone %q: %w", tz, err)
	}
	return Place{Name: name, Lat: lat, Long: long, Location: loc}, nil
}

// Interval is a stretch of daylight from sunrise to sunset.
type Interval struct {
	Sunrise, Sunset time.Time
}

func (d Interval) String() string {
	return fmt.Sprintf("%s to %s",
		d.Sunrise.Format(time.RFC822),
		d.Sunset.Format("15:04 MST"))
}

// Contains reports whether t falls in daylight.
func (d Interval) Contains(t time.Time) bool {
	return !t.Before(d.Sunrise) && t.Before(d.Sunset)
}
