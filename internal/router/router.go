package router

import (
	"context"
	"strings"
)

// Classify determines the intent of a message. Text that does not start with
// a slash is a new task; unknown commands yield IntentUnknown.
func (r *CommandRouter) Classify(ctx context.Context, message string) RouterOutput {
	text := strings.TrimSpace(message)
	if !strings.HasPrefix(text, "/") {
		return RouterOutput{Intent: IntentCreateTask, Argument: text}
	}

	command, argument, _ := strings.Cut(text, " ")
	command = strings.ToLower(command)
	// "/list@my_bot" in group chats
	if at := strings.IndexByte(command, '@'); at > 0 {
		command = command[:at]
	}

	out := RouterOutput{
		Intent:   IntentUnknown,
		Command:  command,
		Argument: strings.TrimSpace(argument),
	}
	if intent, ok := commands[command]; ok {
		out.Intent = intent
	}

	r.l.Debugf(ctx, "%s: %q classified as %s", LogPrefixClassify, command, out.Intent)
	return out
}
