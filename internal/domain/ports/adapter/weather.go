// File: internal/domain/ports/adapter/weather.go
package adapter

import (
	"context"

	"telegram-weather-bot/internal/domain/model"
)

// WeatherProviderAdapter is the port for the third-party weather API.
// Implementations translate provider failures into the sentinel errors
// in internal/domain.
type WeatherProviderAdapter interface {
	// CurrentByCity resolves a free-text city name to current conditions.
	CurrentByCity(ctx context.Context, city string) (*model.CurrentWeather, error)

	// CurrentByCoords returns current conditions for a coordinate pair.
	CurrentByCoords(ctx context.Context, coord model.Coordinates) (*model.CurrentWeather, error)

	// ForecastByCoords returns up to model.MaxForecastEntries 3-hour slots.
	ForecastByCoords(ctx context.Context, coord model.Coordinates) (*model.Forecast, error)
}
