package router

import (
	"context"

	"smart-todo/pkg/log"
)

// Router classifies chat messages into intents.
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// CommandRouter maps slash commands to intents and treats any other text as a new task.
type CommandRouter struct {
	l log.Logger
}

var _ Router = (*CommandRouter)(nil)

func New(l log.Logger) *CommandRouter {
	return &CommandRouter{l: l}
}
