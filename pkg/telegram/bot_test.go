package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-todo/pkg/telegram"
)

type recorder struct {
	webhook telegram.SetWebhookRequest
	sent    []telegram.SendMessageRequest
}

func newFakeAPI(t *testing.T, rec *recorder) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/setWebhook"):
			_ = json.NewDecoder(r.Body).Decode(&rec.webhook)
			if rec.webhook.URL == "bad" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"bad webhook: HTTPS url must be provided"}`))
				return
			}
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var req telegram.SendMessageRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			switch req.Text {
			case "blocked":
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"bot was blocked by the user"}`))
				return
			case "gateway":
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`<html>502</html>`))
				return
			}
			rec.sent = append(rec.sent, req)
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestSetWebhook(t *testing.T) {
	rec := &recorder{}
	bot := telegram.NewBot("token")
	bot.SetAPIURL(newFakeAPI(t, rec).URL)

	if err := bot.SetWebhook(context.Background(), "https://todo.example.com/webhook/telegram"); err != nil {
		t.Fatalf("SetWebhook: %v", err)
	}
	if rec.webhook.URL != "https://todo.example.com/webhook/telegram" {
		t.Errorf("url = %q", rec.webhook.URL)
	}
	if !rec.webhook.DropPendingUpdates {
		t.Error("expected pending updates to be dropped")
	}
	if len(rec.webhook.AllowedUpdates) != 2 || rec.webhook.AllowedUpdates[0] != "message" {
		t.Errorf("allowed_updates = %v", rec.webhook.AllowedUpdates)
	}

	err := bot.SetWebhook(context.Background(), "bad")
	var apiErr *telegram.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != 400 || apiErr.Method != "setWebhook" {
		t.Errorf("unexpected api error: %+v", apiErr)
	}
}

func TestSendMessage(t *testing.T) {
	rec := &recorder{}
	bot := telegram.NewBot("token")
	bot.SetAPIURL(newFakeAPI(t, rec).URL)
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		mode     string
		wantCode int
	}{
		{name: "plain", text: "⏰ Reminder: Call mom"},
		{name: "markdown", text: "*Active*", mode: "Markdown"},
		{name: "blocked by user", text: "blocked", wantCode: 403},
		{name: "non json reply", text: "gateway", wantCode: 502},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := bot.SendMessageWithMode(ctx, 42, tc.text, tc.mode)
			if tc.wantCode == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var apiErr *telegram.APIError
			if !errors.As(err, &apiErr) || apiErr.Code != tc.wantCode {
				t.Fatalf("want APIError %d, got %v", tc.wantCode, err)
			}
		})
	}

	if len(rec.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(rec.sent))
	}
	if rec.sent[0].ChatID != 42 || rec.sent[1].ParseMode != "Markdown" {
		t.Errorf("unexpected payloads: %+v", rec.sent)
	}
}

func TestSendMessage_CancelledContext(t *testing.T) {
	bot := telegram.NewBot("token")
	bot.SetAPIURL(newFakeAPI(t, &recorder{}).URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := bot.SendMessage(ctx, 1, "late"); err == nil {
		t.Error("expected error with cancelled context")
	}
}

func TestUpdate_EffectiveMessage(t *testing.T) {
	var u telegram.Update
	raw := `{"update_id":7,"edited_message":{"message_id":3,"chat":{"id":9,"type":"private"},"text":"/list","entities":[{"type":"bot_command","offset":0,"length":5}]}}`
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatal(err)
	}
	msg := u.EffectiveMessage()
	if msg == nil || msg.Chat.ID != 9 {
		t.Fatalf("EffectiveMessage = %+v", msg)
	}
	if !msg.IsCommand() {
		t.Error("expected /list to be a command")
	}
	if (telegram.Update{}).EffectiveMessage() != nil {
		t.Error("empty update should have no message")
	}
}
