package reminder

import (
	"context"
	"fmt"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
	"smart-todo/pkg/telegram"
)

// Message renders the notification text for a due task.
func Message(task model.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Reminder: %s", task.Title)
	if task.Description != "" {
		fmt.Fprintf(&sb, "\n%s", task.Description)
	}
	if task.DueAt != nil {
		fmt.Fprintf(&sb, "\nDue %s", datemath.FormatForDisplay(*task.DueAt))
	}
	return sb.String()
}

type logNotifier struct {
	l log.Logger
}

// NewLogNotifier writes reminders to the service log.
func NewLogNotifier(l log.Logger) Notifier {
	return logNotifier{l: l}
}

func (n logNotifier) Notify(ctx context.Context, task model.Task) error {
	n.l.Infof(ctx, "reminder: task %d %q is due (%s priority)", task.ID, task.Title, task.Priority.DisplayName())
	return nil
}

type telegramNotifier struct {
	sender telegram.Sender
	chatID int64
}

// NewTelegramNotifier sends reminders to a Telegram chat.
func NewTelegramNotifier(sender telegram.Sender, chatID int64) Notifier {
	return telegramNotifier{sender: sender, chatID: chatID}
}

func (n telegramNotifier) Notify(ctx context.Context, task model.Task) error {
	return n.sender.SendMessage(ctx, n.chatID, Message(task))
}
