package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"telegram-weather-bot/internal/application"
	"telegram-weather-bot/internal/domain"
	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/usecase"

	"github.com/rs/zerolog"
)

// stub provider returning canned data for both flows
type stubProvider struct {
	current  *model.CurrentWeather
	forecast *model.Forecast
	err      error
}

func (s *stubProvider) CurrentByCity(ctx context.Context, city string) (*model.CurrentWeather, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.current, nil
}

func (s *stubProvider) CurrentByCoords(ctx context.Context, coord model.Coordinates) (*model.CurrentWeather, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.current, nil
}

func (s *stubProvider) ForecastByCoords(ctx context.Context, coord model.Coordinates) (*model.Forecast, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.forecast, nil
}

func newFacade(p *stubProvider) *application.BotFacade {
	l := zerolog.Nop()
	return application.NewBotFacade(usecase.NewWeatherUseCase(p, &l))
}

func okProvider() *stubProvider {
	return &stubProvider{
		current: &model.CurrentWeather{
			City:        "Singapore",
			Country:     "SG",
			Condition:   "Clouds",
			Description: "scattered clouds",
			TempC:       30.2,
			FeelsLikeC:  35.1,
			Humidity:    70,
			PressureHPa: 1010,
			WindSpeedMS: 2,
		},
		forecast: &model.Forecast{
			City:    "Singapore",
			Country: "SG",
			Entries: []model.ForecastEntry{
				{Condition: "Rain", Description: "light rain", TempC: 28, WindSpeedMS: 3},
			},
		},
	}
}

func TestHandleWeatherCity(t *testing.T) {
	t.Parallel()

	f := newFacade(okProvider())
	reply, err := f.HandleWeatherCity(context.Background(), "Singapore")
	if err != nil {
		t.Fatalf("HandleWeatherCity returned error: %v", err)
	}
	if !strings.Contains(reply.Current, "30.2°C") {
		t.Fatalf("current reply missing temperature:\n%s", reply.Current)
	}
	if !strings.Contains(reply.Forecast, "Next 36 hours for Singapore, SG") {
		t.Fatalf("forecast reply missing header:\n%s", reply.Forecast)
	}
}

func TestHandleWeatherCityMissingArg(t *testing.T) {
	t.Parallel()

	f := newFacade(okProvider())
	_, err := f.HandleWeatherCity(context.Background(), "  ")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestHandleWeatherLocationMatchesCityPath(t *testing.T) {
	t.Parallel()

	p := okProvider()
	f := newFacade(p)
	ctx := context.Background()

	byCity, err := f.HandleWeatherCity(ctx, "Singapore")
	if err != nil {
		t.Fatalf("city flow error: %v", err)
	}
	byLoc, err := f.HandleWeatherLocation(ctx, model.Coordinates{Latitude: 1.35, Longitude: 103.82})
	if err != nil {
		t.Fatalf("location flow error: %v", err)
	}
	if byCity.Current != byLoc.Current || byCity.Forecast != byLoc.Forecast {
		t.Fatalf("expected identical output from both flows:\n%s\n---\n%s", byCity.Current, byLoc.Current)
	}
}

func TestUserFacingError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrCityNotFound, "City not found"},
		{domain.ErrInvalidArgument, "Usage: /weather"},
		{domain.ErrProviderUnavailable, "couldn't fetch the weather"},
		{domain.ErrBadResponse, "Something went wrong"},
		{errors.New("boom"), "Something went wrong"},
	}
	for _, tc := range cases {
		if got := application.UserFacingError(tc.err); !strings.Contains(got, tc.want) {
			t.Errorf("UserFacingError(%v) = %q, want substring %q", tc.err, got, tc.want)
		}
	}
}

func TestStartAndHelpTexts(t *testing.T) {
	t.Parallel()

	f := newFacade(okProvider())
	if !strings.Contains(f.HandleStart(), "/weather <city>") {
		t.Fatalf("start text missing usage hint: %q", f.HandleStart())
	}
	if !strings.Contains(f.HandleHelp(), "Share your location") {
		t.Fatalf("help text missing location hint: %q", f.HandleHelp())
	}
}
