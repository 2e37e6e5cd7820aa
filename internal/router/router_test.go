package router

import (
	"context"
	"testing"

	"smart-todo/pkg/log"
)

func TestClassify(t *testing.T) {
	r := New(log.NewNop())

	tests := []struct {
		name    string
		message string
		want    RouterOutput
	}{
		{
			name:    "plain text is a new task",
			message: "  Call mom tomorrow 9am  ",
			want:    RouterOutput{Intent: IntentCreateTask, Argument: "Call mom tomorrow 9am"},
		},
		{
			name:    "list with view",
			message: "/list active",
			want:    RouterOutput{Intent: IntentListTasks, Command: "/list", Argument: "active"},
		},
		{
			name:    "bot suffix stripped",
			message: "/done@todo_bot 12",
			want:    RouterOutput{Intent: IntentCompleteTask, Command: "/done", Argument: "12"},
		},
		{
			name:    "case insensitive command",
			message: "/DELETE 3",
			want:    RouterOutput{Intent: IntentDeleteTask, Command: "/delete", Argument: "3"},
		},
		{
			name:    "add keeps the sentence",
			message: "/add Pay bills Friday urgent",
			want:    RouterOutput{Intent: IntentCreateTask, Command: "/add", Argument: "Pay bills Friday urgent"},
		},
		{
			name:    "undo without argument",
			message: "/undo",
			want:    RouterOutput{Intent: IntentUndo, Command: "/undo"},
		},
		{
			name:    "unknown command",
			message: "/weather",
			want:    RouterOutput{Intent: IntentUnknown, Command: "/weather"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(context.Background(), tt.message)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}
