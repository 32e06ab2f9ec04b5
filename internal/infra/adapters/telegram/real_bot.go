// File: internal/infra/adapters/telegram/real_bot.go
package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/application"
	"telegram-weather-bot/internal/config"
	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/domain/ports/adapter"
	"telegram-weather-bot/internal/infra/logging"
	"telegram-weather-bot/internal/infra/metrics"
)

var _ adapter.TelegramBotAdapter = (*RealTelegramBotAdapter)(nil)

// RealTelegramBotAdapter uses tgbotapi to poll updates and delegates to
// BotFacade. Updates fan out to a small worker pool; handlers share no
// mutable state so no locking is needed.
type RealTelegramBotAdapter struct {
	bot    *tgbotapi.BotAPI
	cfg    *config.BotConfig
	facade *application.BotFacade
	log    *zerolog.Logger

	updateWorkers int
	cancelPolling context.CancelFunc
}

func NewRealTelegramBotAdapter(cfg *config.BotConfig, facade *application.BotFacade, logger *zerolog.Logger) (*RealTelegramBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if facade == nil {
		return nil, errors.New("bot facade is nil")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	return &RealTelegramBotAdapter{
		bot:           bot,
		cfg:           cfg,
		facade:        facade,
		log:           logger,
		updateWorkers: workers,
	}, nil
}

// StartPolling begins long polling Telegram for updates. It runs until
// ctx is canceled.
func (r *RealTelegramBotAdapter) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	for i := 0; i < r.updateWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case up := <-updateChan:
					if err := r.handleUpdate(ctx, up); err != nil {
						r.log.Error().Int("worker", id).Err(err).Msg("handle update")
					}
				}
			}
		}(i)
	}

	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			close(updateChan)
			wg.Wait()
			return ctx.Err()
		case up := <-updates:
			updateChan <- up
		}
	}
}

// StopPolling stops the polling loop gracefully.
func (r *RealTelegramBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

func (r *RealTelegramBotAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := r.bot.Send(msg)
	return err
}

func (r *RealTelegramBotAdapter) SendMarkdown(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := r.bot.Send(msg)
	return err
}

// SendKeyboard sends a message with a persistent reply keyboard, used for
// the share-location button.
func (r *RealTelegramBotAdapter) SendKeyboard(ctx context.Context, chatID int64, text string, rows [][]adapter.ReplyButton) error {
	kbRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		kr := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, btn := range row {
			kb := tgbotapi.NewKeyboardButton(btn.Text)
			kb.RequestLocation = btn.RequestLocation
			kr = append(kr, kb)
		}
		kbRows = append(kbRows, kr)
	}
	markup := tgbotapi.NewReplyKeyboard(kbRows...)
	markup.OneTimeKeyboard = false

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	_, err := r.bot.Send(msg)
	return err
}

// handleUpdate routes a single Telegram update: command keyword or
// location payload, one provider round-trip, one reply pair. Any flow
// error becomes an apologetic text; the loop never dies.
func (r *RealTelegramBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil || update.Message.From == nil {
		return nil
	}
	msg := update.Message
	chatID := msg.Chat.ID

	ctx = logging.WithTraceID(ctx, uuid.NewString())
	ctx = logging.WithTgID(ctx, msg.From.ID)
	logger := logging.With(ctx, r.log)

	// ----- Shared location -----
	if msg.Location != nil {
		metrics.IncUpdate("location")
		coord := model.Coordinates{Latitude: msg.Location.Latitude, Longitude: msg.Location.Longitude}
		reply, err := r.facade.HandleWeatherLocation(ctx, coord)
		if err != nil {
			logger.Warn().Err(err).Float64("lat", coord.Latitude).Float64("lon", coord.Longitude).Msg("location flow failed")
			return r.reply(ctx, chatID, "Couldn't fetch weather for that location. Try again.")
		}
		return r.replyWeather(ctx, chatID, reply)
	}

	// ----- Commands -----
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			metrics.IncUpdate("start")
			rows := [][]adapter.ReplyButton{
				{{Text: "Send my location 📍", RequestLocation: true}},
			}
			if err := r.SendKeyboard(ctx, chatID, r.facade.HandleStart(), rows); err != nil {
				metrics.IncReply("error")
				return err
			}
			metrics.IncReply("ok")
			return nil

		case "help":
			metrics.IncUpdate("help")
			return r.reply(ctx, chatID, r.facade.HandleHelp())

		case "weather":
			metrics.IncUpdate("weather")
			reply, err := r.facade.HandleWeatherCity(ctx, msg.CommandArguments())
			if err != nil {
				logger.Warn().Err(err).Str("args", msg.CommandArguments()).Msg("city flow failed")
				return r.reply(ctx, chatID, application.UserFacingError(err))
			}
			return r.replyWeather(ctx, chatID, reply)

		default:
			metrics.IncUpdate("unknown_command")
			return r.reply(ctx, chatID, "I didn't understand that. Use /weather <city> or share your location.")
		}
	}

	// ----- Free text -----
	// Only commands and locations get answers; plain text is counted and
	// left alone.
	if strings.TrimSpace(msg.Text) != "" {
		metrics.IncUpdate("text")
	}
	return nil
}

func (r *RealTelegramBotAdapter) reply(ctx context.Context, chatID int64, text string) error {
	if err := r.SendMessage(ctx, chatID, text); err != nil {
		metrics.IncReply("error")
		return err
	}
	metrics.IncReply("ok")
	return nil
}

// replyWeather sends the current conditions and the forecast as two
// Markdown messages, in that order.
func (r *RealTelegramBotAdapter) replyWeather(ctx context.Context, chatID int64, reply *application.WeatherReply) error {
	if err := r.SendMarkdown(ctx, chatID, reply.Current); err != nil {
		metrics.IncReply("error")
		return err
	}
	if err := r.SendMarkdown(ctx, chatID, reply.Forecast); err != nil {
		metrics.IncReply("error")
		return err
	}
	metrics.IncReply("ok")
	return nil
}
