package telegram

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/router"
	"smart-todo/internal/task"
	"smart-todo/internal/task/editor"
	pkgResponse "smart-todo/pkg/response"
	pkgTelegram "smart-todo/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine
// so a slow calendar mirror never trips the Telegram webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Edits are treated like a fresh message; everything else is ignored.
	msg := update.EffectiveMessage()
	if msg == nil || msg.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				h.l.Errorf(bgCtx, "telegram handler: panic while processing chat %d: %v", msg.Chat.ID, r)
			}
		}()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, errorMessage(err))
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message. Errors returned here are
// reported to the chat through errorMessage.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	chatID := msg.Chat.ID
	state := h.session(chatID)
	defer func() { h.sessions.Add(chatID, state) }()

	out := h.router.Classify(ctx, msg.Text)

	var (
		reply string
		err   error
	)
	switch out.Intent {
	case router.IntentStart:
		reply = msgWelcome
	case router.IntentHelp:
		reply = msgHelp
	case router.IntentCreateTask:
		state, reply, err = h.createTask(ctx, state, out.Argument)
	case router.IntentSuggest:
		state, reply, err = h.suggest(ctx, state, out.Argument)
	case router.IntentListTasks:
		state, reply, err = h.listTasks(ctx, state, out.Argument)
	case router.IntentCompleteTask:
		reply, err = h.toggleTask(ctx, out.Argument)
	case router.IntentDeleteTask:
		state, reply, err = h.deleteTask(ctx, state, out.Argument)
	case router.IntentUndo:
		state, reply, err = h.undo(ctx, state)
	case router.IntentCounts:
		reply, err = h.counts(ctx)
	default:
		reply = msgUnknownCommand
	}
	if err != nil {
		return err
	}

	return h.bot.SendMessage(ctx, chatID, reply)
}

func (h *handler) createTask(ctx context.Context, s editor.State, text string) (editor.State, string, error) {
	if strings.TrimSpace(text) == "" {
		return s, "", task.ErrEmptyInput
	}
	s = editor.Reduce(s, editor.ShowAdd{})
	s = editor.Reduce(s, editor.QuickAddParsed{Parsed: h.uc.Parse(text)})
	return h.saveForm(ctx, s)
}

func (h *handler) saveForm(ctx context.Context, s editor.State) (editor.State, string, error) {
	output, err := h.uc.Save(ctx, s.SaveInput())
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Save: %v", err)
		return s, "", err
	}
	s = editor.Reduce(s, editor.Hide{})
	s = editor.Reduce(s, editor.MessageShown{Message: output.Message})

	reply := output.Message + "\n\n" + formatTask(output.Task)
	if output.CalendarLink != "" {
		reply += "\n" + output.CalendarLink
	}
	return s, reply, nil
}

// suggest lists templates matching text, or saves the n-th listed template
// when text is a number.
func (h *handler) suggest(ctx context.Context, s editor.State, text string) (editor.State, string, error) {
	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 || n > len(s.Suggestions) {
			return s, formatSuggestions(s.Suggestions), nil
		}
		// ShowAdd clears the form, suggestions included.
		choice := s.Suggestions[n-1]
		s = editor.Reduce(s, editor.ShowAdd{})
		s = editor.Reduce(s, editor.SuggestionApplied{Parsed: h.uc.Parse(choice)})
		return h.saveForm(ctx, s)
	}

	s = editor.Reduce(s, editor.TitleChanged{Title: text})
	if len(s.Suggestions) == 0 {
		// Short inputs still get the whole catalogue.
		s.Suggestions = h.uc.Suggest(text)
	}
	return s, formatSuggestions(s.Suggestions), nil
}

func (h *handler) listTasks(ctx context.Context, s editor.State, view string) (editor.State, string, error) {
	if view != "" {
		v, err := task.ParseView(view)
		if err != nil {
			return s, "", err
		}
		s = editor.Reduce(s, editor.TabSelected{Tab: v})
	}

	out, err := h.uc.List(ctx, task.ListInput{View: s.Tab})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.List: %v", err)
		return s, "", err
	}
	return s, formatList(s.Tab, out), nil
}

func (h *handler) toggleTask(ctx context.Context, arg string) (string, error) {
	id, ok := parseID(arg)
	if !ok {
		return msgUsageID, nil
	}
	t, err := h.uc.ToggleCompletion(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.ToggleCompletion: %v", err)
		return "", err
	}
	if t.Completed {
		return "✅ Completed: " + t.Title, nil
	}
	return "⬜ Reopened: " + t.Title, nil
}

func (h *handler) deleteTask(ctx context.Context, s editor.State, arg string) (editor.State, string, error) {
	id, ok := parseID(arg)
	if !ok {
		return s, msgUsageID, nil
	}
	t, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Delete: %v", err)
		return s, "", err
	}
	s = editor.Reduce(s, editor.TaskDeleted{Task: t})
	return s, s.Message + ": " + t.Title + "\n" + msgUndoHint, nil
}

func (h *handler) undo(ctx context.Context, s editor.State) (editor.State, string, error) {
	t, err := h.uc.UndoDelete(ctx)
	if err != nil {
		s = editor.Reduce(s, editor.UndoDismissed{})
		return s, "", err
	}
	s = editor.Reduce(s, editor.UndoCompleted{})
	return s, s.Message + ": " + formatTask(t), nil
}

func (h *handler) counts(ctx context.Context) (string, error) {
	c, err := h.uc.Counts(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Counts: %v", err)
		return "", err
	}
	notice, err := h.uc.OverdueNotice(ctx)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: uc.OverdueNotice: %v", err)
	}
	return formatCounts(c, notice), nil
}

func parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(arg), "#"), 10, 64)
	return id, err == nil && id > 0
}
