// File: internal/domain/model/weather.go
package model

import "time"

// Coordinates is a latitude/longitude pair as shared by Telegram clients
// or returned by the provider's geocoding.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CurrentWeather is the provider-independent view of current conditions
// for a single place. It lives only for the duration of one handler
// invocation; nothing persists it.
type CurrentWeather struct {
	City        string
	Country     string
	Coord       Coordinates
	Condition   string // provider condition group, e.g. "Rain"
	Description string // human description, e.g. "light rain"
	TempC       float64
	FeelsLikeC  float64
	Humidity    int
	PressureHPa int
	WindSpeedMS float64
	// TZOffset is the place's offset from UTC; sunrise/sunset are
	// rendered in this offset, not the server's zone.
	TZOffset time.Duration
	Sunrise  time.Time // zero when the provider omits it
	Sunset   time.Time
}

// ForecastEntry is one 3-hour slot of the 5-day forecast.
type ForecastEntry struct {
	At          time.Time
	Condition   string
	Description string
	TempC       float64
	WindSpeedMS float64
}

// Forecast holds up to MaxForecastEntries consecutive 3-hour slots
// (36 hours) for a place.
type Forecast struct {
	City     string
	Country  string
	TZOffset time.Duration
	Entries  []ForecastEntry
}

// MaxForecastEntries caps the forecast at twelve 3-hour slots.
const MaxForecastEntries = 12
