package telegram

import (
	"fmt"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/datemath"
)

const (
	msgWelcome = "👋 Welcome to Smart Todo!\n\n" +
		"Send me a sentence and I will turn it into a task, e.g.\n" +
		"\"Submit report by Friday 5pm urgent remind me\"\n\n" +
		"Send /help to see every command."

	msgHelp = "Commands:\n" +
		"/list [all|active|completed] - show tasks\n" +
		"/suggest <text> - template ideas, then /suggest <n> to add one\n" +
		"/done <id> - toggle completion\n" +
		"/delete <id> - delete a task\n" +
		"/undo - restore the last deleted task\n" +
		"/stats - task counters\n\n" +
		"Any other text is added as a new task."

	msgUnknownCommand = "Unknown command. Send /help for the list."
	msgUsageID        = "⚠️ Please give a task id, e.g. /done 3"
	msgNoTasks        = "No tasks here yet."
	msgNoSuggestions  = "No suggestions match."
	msgUndoHint       = "Send /undo to restore it."
)

func formatTask(t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s [%s]", t.ID, t.Title, t.Priority.DisplayName())
	if t.DueAt != nil {
		fmt.Fprintf(&b, "\n📅 %s", datemath.FormatForDisplay(*t.DueAt))
	}
	if t.HasReminder {
		b.WriteString(" 🔔")
	}
	return b.String()
}

func formatItem(item task.TaskItem) string {
	mark := "⬜"
	if item.Task.Completed {
		mark = "✅"
	}
	line := fmt.Sprintf("%s #%d %s [%s]", mark, item.Task.ID, item.Task.Title, item.Task.Priority.DisplayName())
	switch {
	case item.IsOverdue:
		line += " ⚠️ overdue"
	case item.DueLabel != "":
		line += " · " + item.DueLabel
	}
	return line
}

func formatList(view task.View, out task.ListOutput) string {
	if out.Count == 0 {
		return msgNoTasks
	}
	lines := make([]string, 0, len(out.Items)+1)
	lines = append(lines, fmt.Sprintf("%s tasks (%d):", strings.ToUpper(string(view[:1]))+string(view[1:]), out.Count))
	for _, item := range out.Items {
		lines = append(lines, formatItem(item))
	}
	return strings.Join(lines, "\n")
}

func formatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return msgNoSuggestions
	}
	lines := make([]string, 0, len(suggestions)+1)
	lines = append(lines, "Suggestions:")
	for i, s := range suggestions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, s))
	}
	lines = append(lines, "", "Send /suggest <n> to add one.")
	return strings.Join(lines, "\n")
}

func formatCounts(c task.Counts, notice string) string {
	text := fmt.Sprintf("Active: %d\nCompleted: %d\nOverdue: %d\nDue today: %d", c.Active, c.Completed, c.Overdue, c.DueToday)
	if notice != "" {
		text += "\n\n" + notice
	}
	return text
}
