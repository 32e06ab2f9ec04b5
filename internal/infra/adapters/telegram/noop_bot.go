// File: internal/infra/adapters/telegram/noop_bot.go
package telegram

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"telegram-weather-bot/internal/domain/ports/adapter"
)

var _ adapter.TelegramBotAdapter = (*NoopBotAdapter)(nil)

// NoopBotAdapter implements adapter.TelegramBotAdapter for local/dev runs.
// It logs messages instead of sending real Telegram messages.
type NoopBotAdapter struct {
	log *zerolog.Logger
}

func NewNoopBotAdapter(logger *zerolog.Logger) *NoopBotAdapter {
	return &NoopBotAdapter{log: logger}
}

func (b *NoopBotAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	b.log.Info().Int64("chat_id", chatID).Str("text", text).Msg("noop send")
	return nil
}

func (b *NoopBotAdapter) SendMarkdown(ctx context.Context, chatID int64, text string) error {
	return b.SendMessage(ctx, chatID, text)
}

func (b *NoopBotAdapter) SendKeyboard(ctx context.Context, chatID int64, text string, rows [][]adapter.ReplyButton) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	b.log.Info().Int64("chat_id", chatID).Str("text", text).Interface("keyboard", rows).Msg("noop send keyboard")
	return nil
}
