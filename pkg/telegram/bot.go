package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	defaultTimeout = 10 * time.Second
)

// allowedUpdates limits webhook traffic to what the task bot handles.
var allowedUpdates = []string{"message", "edited_message"}

// Bot is a minimal Bot API client: webhook registration and outgoing text.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL points the client at another base URL. Used by tests.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers webhookURL and drops updates queued while the bot was offline.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	req := SetWebhookRequest{
		URL:                webhookURL,
		AllowedUpdates:     allowedUpdates,
		DropPendingUpdates: true,
	}
	if err := b.post(ctx, "setWebhook", req); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	return nil
}

// SendMessage sends plain text to chatID. It satisfies Sender.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends text rendered with parseMode ("Markdown", "HTML" or "").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	req := SendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode}
	if err := b.post(ctx, "sendMessage", req); err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return nil
}

func (b *Bot) post(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read %s reply: %w", method, err)
	}

	var reply APIResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		return &APIError{Method: method, Code: resp.StatusCode, Description: string(raw)}
	}
	if !reply.OK {
		code := reply.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return &APIError{Method: method, Code: code, Description: reply.Description}
	}
	return nil
}
