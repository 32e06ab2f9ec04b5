// File: internal/application/bot_facade.go
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"telegram-weather-bot/internal/domain"
	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/usecase"
)

// BotFacade composes the weather usecase into high-level bot commands.
// Methods return the reply strings so the Telegram adapter just forwards
// them to the chat.
type BotFacade struct {
	WeatherUC *usecase.WeatherUseCase
}

func NewBotFacade(weatherUC *usecase.WeatherUseCase) *BotFacade {
	return &BotFacade{WeatherUC: weatherUC}
}

// WeatherReply is the pair of messages sent for one weather request:
// current conditions first, then the forecast.
type WeatherReply struct {
	Current  string
	Forecast string
}

// HandleStart returns the welcome text shown with the location keyboard.
func (b *BotFacade) HandleStart() string {
	return "Hi! I'm your Weather Bot.\n" +
		"• Type /weather <city> (e.g. /weather Tokyo)\n" +
		"• Or tap the button below to share your current location.\n" +
		"Units: °C (metric)."
}

// HandleHelp returns the command list.
func (b *BotFacade) HandleHelp() string {
	return "Commands:\n" +
		"/weather <city> – Get weather for a city\n" +
		"Share your location – Get weather for where you are\n" +
		"/help – Show this help"
}

// HandleWeatherCity runs the city flow. args is everything after the
// command keyword, joined as the city name.
func (b *BotFacade) HandleWeatherCity(ctx context.Context, args string) (*WeatherReply, error) {
	city := strings.TrimSpace(args)
	if city == "" {
		return nil, fmt.Errorf("%w: missing city", domain.ErrInvalidArgument)
	}
	report, err := b.WeatherUC.ByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	return &WeatherReply{
		Current:  RenderCurrent(report.Current),
		Forecast: RenderForecast(report.Forecast),
	}, nil
}

// HandleWeatherLocation runs the shared-location flow. It takes the same
// formatting path as the city flow.
func (b *BotFacade) HandleWeatherLocation(ctx context.Context, coord model.Coordinates) (*WeatherReply, error) {
	report, err := b.WeatherUC.ByCoords(ctx, coord)
	if err != nil {
		return nil, err
	}
	return &WeatherReply{
		Current:  RenderCurrent(report.Current),
		Forecast: RenderForecast(report.Forecast),
	}, nil
}

// UserFacingError maps a flow error to the short apologetic text sent to
// the chat instead of crashing the handler.
func UserFacingError(err error) string {
	switch {
	case errors.Is(err, domain.ErrCityNotFound):
		return "City not found. Try a different name or share your location."
	case errors.Is(err, domain.ErrInvalidArgument):
		return "Usage: /weather <city name>\nExample: /weather Singapore"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "Sorry, I couldn't fetch the weather right now."
	default:
		return "Something went wrong. Please try again later."
	}
}
