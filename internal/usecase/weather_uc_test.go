package usecase

import (
	"context"
	"errors"
	"testing"

	"telegram-weather-bot/internal/domain"
	"telegram-weather-bot/internal/domain/model"

	"github.com/rs/zerolog"
)

// mock provider implementing the methods used by WeatherUseCase
type mockProvider struct {
	current  *model.CurrentWeather
	forecast *model.Forecast

	currentErr  error
	forecastErr error

	// recorded inputs
	gotCity          string
	gotCurrentCoord  model.Coordinates
	gotForecastCoord model.Coordinates
}

func (m *mockProvider) CurrentByCity(ctx context.Context, city string) (*model.CurrentWeather, error) {
	m.gotCity = city
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	return m.current, nil
}

func (m *mockProvider) CurrentByCoords(ctx context.Context, coord model.Coordinates) (*model.CurrentWeather, error) {
	m.gotCurrentCoord = coord
	if m.currentErr != nil {
		return nil, m.currentErr
	}
	return m.current, nil
}

func (m *mockProvider) ForecastByCoords(ctx context.Context, coord model.Coordinates) (*model.Forecast, error) {
	m.gotForecastCoord = coord
	if m.forecastErr != nil {
		return nil, m.forecastErr
	}
	return m.forecast, nil
}

func newUC(p *mockProvider) *WeatherUseCase {
	l := zerolog.Nop()
	return NewWeatherUseCase(p, &l)
}

func TestByCityFetchesForecastForResolvedCoords(t *testing.T) {
	t.Parallel()

	coord := model.Coordinates{Latitude: 35.68, Longitude: 139.69}
	p := &mockProvider{
		current:  &model.CurrentWeather{City: "Tokyo", Coord: coord},
		forecast: &model.Forecast{City: "Tokyo"},
	}
	uc := newUC(p)

	report, err := uc.ByCity(context.Background(), " Tokyo ")
	if err != nil {
		t.Fatalf("ByCity returned error: %v", err)
	}
	if p.gotCity != "Tokyo" {
		t.Fatalf("expected trimmed city name, got %q", p.gotCity)
	}
	if p.gotForecastCoord != coord {
		t.Fatalf("forecast fetched for %+v, want %+v", p.gotForecastCoord, coord)
	}
	if report.Current == nil || report.Forecast == nil {
		t.Fatalf("expected both current and forecast in report: %+v", report)
	}
}

func TestByCityEmptyArgument(t *testing.T) {
	t.Parallel()

	uc := newUC(&mockProvider{})
	_, err := uc.ByCity(context.Background(), "   ")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestByCityPropagatesNotFound(t *testing.T) {
	t.Parallel()

	uc := newUC(&mockProvider{currentErr: domain.ErrCityNotFound})
	_, err := uc.ByCity(context.Background(), "Atlantis")
	if !errors.Is(err, domain.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestByCityForecastFailure(t *testing.T) {
	t.Parallel()

	p := &mockProvider{
		current:     &model.CurrentWeather{City: "Tokyo"},
		forecastErr: domain.ErrProviderUnavailable,
	}
	uc := newUC(p)
	_, err := uc.ByCity(context.Background(), "Tokyo")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestByCoordsUsesSharedLocationForBothCalls(t *testing.T) {
	t.Parallel()

	coord := model.Coordinates{Latitude: -23.55, Longitude: -46.63}
	p := &mockProvider{
		current:  &model.CurrentWeather{City: "São Paulo", Coord: coord},
		forecast: &model.Forecast{City: "São Paulo"},
	}
	uc := newUC(p)

	report, err := uc.ByCoords(context.Background(), coord)
	if err != nil {
		t.Fatalf("ByCoords returned error: %v", err)
	}
	if p.gotCurrentCoord != coord || p.gotForecastCoord != coord {
		t.Fatalf("expected both calls with %+v, got current=%+v forecast=%+v",
			coord, p.gotCurrentCoord, p.gotForecastCoord)
	}
	if report.Current.City != "São Paulo" {
		t.Fatalf("unexpected report: %+v", report.Current)
	}
}
