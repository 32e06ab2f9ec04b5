// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/application"
	"telegram-weather-bot/internal/config"
	"telegram-weather-bot/internal/domain/ports/adapter"
	tele "telegram-weather-bot/internal/infra/adapters/telegram"
	owm "telegram-weather-bot/internal/infra/adapters/weather"
	"telegram-weather-bot/internal/infra/logging"
	"telegram-weather-bot/internal/infra/metrics"
	"telegram-weather-bot/internal/infra/web"
	"telegram-weather-bot/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "development mode (console logs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("dev mode enabled")
	}

	metrics.MustRegister()

	// ---- Weather provider ----
	provider, err := owm.NewOpenWeatherAdapter(cfg.Weather)
	if err != nil {
		logger.Fatal().Err(err).Msg("openweather adapter")
	}

	// ---- Use cases / facade ----
	weatherUC := usecase.NewWeatherUseCase(provider, logger)
	facade := application.NewBotFacade(weatherUC)

	// ---- Telegram ----
	if strings.ToLower(cfg.Bot.Mode) == "noop" {
		// Noop mode needs no Telegram token: run the whole pipeline once
		// for a sample city and log the replies instead of sending them.
		runNoop(ctx, facade, logger)
		return
	}
	botAdapter, err := tele.NewRealTelegramBotAdapter(&cfg.Bot, facade, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram")
	}
	go func() {
		if err := botAdapter.StartPolling(ctx); err != nil && err != context.Canceled {
			logger.Error().Err(err).Msg("telegram polling stopped")
		}
	}()

	// ---- Ops server (/health, /metrics) ----
	ops := web.NewServer(&cfg.Ops, logger)
	go func() {
		if err := ops.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("ops server")
		}
	}()

	logger.Info().Msg("bot is running; send SIGINT to stop")

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()
	botAdapter.StopPolling()

	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	_ = ops.Shutdown(shCtx)
}

// runNoop exercises the full flow against the real provider with the noop
// bot adapter as the reply sender. The city comes from the first positional
// argument, defaulting to Tokyo.
func runNoop(ctx context.Context, facade *application.BotFacade, logger *zerolog.Logger) {
	var bot adapter.TelegramBotAdapter = tele.NewNoopBotAdapter(logger)

	city := flag.Arg(0)
	if city == "" {
		city = "Tokyo"
	}

	rows := [][]adapter.ReplyButton{
		{{Text: "Send my location 📍", RequestLocation: true}},
	}
	_ = bot.SendKeyboard(ctx, 0, facade.HandleStart(), rows)

	reply, err := facade.HandleWeatherCity(ctx, city)
	if err != nil {
		logger.Error().Err(err).Str("city", city).Msg("noop weather flow")
		_ = bot.SendMessage(ctx, 0, application.UserFacingError(err))
		return
	}
	_ = bot.SendMarkdown(ctx, 0, reply.Current)
	_ = bot.SendMarkdown(ctx, 0, reply.Forecast)
}
