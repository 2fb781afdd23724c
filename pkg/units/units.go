// Package units converts the handful of measurement units that show up in
// forecast and observation tables.
package units

import (
	"gonum.org/v1/gonum/floats"
)

const (
	// MetersPerSecondPerMPH is the exact international mile-per-hour factor.
	MetersPerSecondPerMPH = 0.44704

	minutesPerHour = 60
)

// FahrenheitToCelsius converts a temperature in °F to °C.
func FahrenheitToCelsius(f float64) float64 {
	// Multiply before dividing so 32 and 212 land exactly on 0 and 100.
	return (f - 32) * 5 / 9
}

// MPHToMetersPerSecond converts a speed in miles per hour to m/s.
func MPHToMetersPerSecond(mph float64) float64 {
	return mph * MetersPerSecondPerMPH
}

// PerMinuteToPerHour converts a rate expressed per minute to per hour.
func PerMinuteToPerHour(rate float64) float64 {
	return rate * minutesPerHour
}

// Fahrenheit converts every value in f to °C, returning a new slice.
func Fahrenheit(f []float64) []float64 {
	c := make([]float64, len(f))
	for i, v := range f {
		c[i] = FahrenheitToCelsius(v)
	}
	return c
}

// MPH converts every value in mph to m/s, returning a new slice.
func MPH(mph []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(mph)), MetersPerSecondPerMPH, mph)
}

// PerHour converts a per-minute series to per-hour, returning a new slice.
func PerHour(perMinute []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(perMinute)), minutesPerHour, perMinute)
}
