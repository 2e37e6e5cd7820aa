package telegram

import "context"

// Sender delivers text messages to a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
