// File: internal/usecase/weather_uc.go
package usecase

import (
	"context"
	"strings"

	"telegram-weather-bot/internal/domain"
	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/domain/ports/adapter"
	"telegram-weather-bot/internal/infra/logging"

	"github.com/rs/zerolog"
)

// Report bundles the two provider responses one chat reply pair is built
// from. Purely transient; dropped once the reply is sent.
type Report struct {
	Current  *model.CurrentWeather
	Forecast *model.Forecast
}

// WeatherUseCase orchestrates the provider calls for one incoming message.
// The city flow resolves coordinates via the current-conditions response,
// then fetches the forecast for them, matching the coordinate flow.
type WeatherUseCase struct {
	provider adapter.WeatherProviderAdapter
	log      *zerolog.Logger
}

func NewWeatherUseCase(provider adapter.WeatherProviderAdapter, logger *zerolog.Logger) *WeatherUseCase {
	return &WeatherUseCase{provider: provider, log: logger}
}

// ByCity returns current conditions and forecast for a free-text city name.
func (uc *WeatherUseCase) ByCity(ctx context.Context, city string) (*Report, error) {
	defer logging.TraceDuration(uc.log, "WeatherUC.ByCity")()

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.ErrInvalidArgument
	}

	current, err := uc.provider.CurrentByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	forecast, err := uc.provider.ForecastByCoords(ctx, current.Coord)
	if err != nil {
		return nil, err
	}
	return &Report{Current: current, Forecast: forecast}, nil
}

// ByCoords returns current conditions and forecast for a shared location.
func (uc *WeatherUseCase) ByCoords(ctx context.Context, coord model.Coordinates) (*Report, error) {
	defer logging.TraceDuration(uc.log, "WeatherUC.ByCoords")()

	current, err := uc.provider.CurrentByCoords(ctx, coord)
	if err != nil {
		return nil, err
	}
	forecast, err := uc.provider.ForecastByCoords(ctx, coord)
	if err != nil {
		return nil, err
	}
	return &Report{Current: current, Forecast: forecast}, nil
}
