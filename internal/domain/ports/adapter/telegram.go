// File: internal/domain/ports/adapter/telegram.go
package adapter

import "context"

// ReplyButton is a button on the regular reply keyboard. RequestLocation
// asks the Telegram client to share the user's location when tapped.
type ReplyButton struct {
	Text            string
	RequestLocation bool
}

type TelegramBotAdapter interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMarkdown(ctx context.Context, chatID int64, text string) error
	SendKeyboard(ctx context.Context, chatID int64, text string, rows [][]ReplyButton) error
}
