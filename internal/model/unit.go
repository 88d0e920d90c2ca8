package model

import (
	"fmt"
	"strings"
)

// TemperatureUnit selects the measurement system the upstream API reports in.
type TemperatureUnit uint8

const (
	UnitStandard TemperatureUnit = iota // Kelvin, the upstream default
	UnitMetric
	UnitImperial
)

func (u TemperatureUnit) String() string {
	switch u {
	case UnitMetric:
		return "metric"
	case UnitImperial:
		return "imperial"
	default:
		return "standard"
	}
}

// UnitError reports an unrecognized unit alias, keeping the alias for diagnostics.
type UnitError struct {
	Alias string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("invalid temperature unit %q", e.Alias)
}

// ParseTemperatureUnit maps the request-level aliases onto a unit.
// Matching is case-insensitive; anything outside the known aliases fails.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(s) {
	case "f", "fahrenheit":
		return UnitImperial, nil
	case "c", "celsius":
		return UnitMetric, nil
	case "k", "kelvin":
		return UnitStandard, nil
	default:
		return UnitStandard, &UnitError{Alias: s}
	}
}

// RequestKind distinguishes the two upstream query shapes. It participates in
// cache identity so current and forecast responses never shadow each other.
type RequestKind uint8

const (
	CurrentWeather RequestKind = iota
	WeatherForecast
)

func (k RequestKind) String() string {
	if k == WeatherForecast {
		return "forecast"
	}
	return "current"
}
