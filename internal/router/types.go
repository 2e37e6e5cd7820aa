package router

// Intent represents what a chat message asks for.
type Intent string

const (
	IntentCreateTask   Intent = "CREATE_TASK"
	IntentListTasks    Intent = "LIST_TASKS"
	IntentSuggest      Intent = "SUGGEST"
	IntentCompleteTask Intent = "COMPLETE_TASK"
	IntentDeleteTask   Intent = "DELETE_TASK"
	IntentUndo         Intent = "UNDO"
	IntentCounts       Intent = "COUNTS"
	IntentStart        Intent = "START"
	IntentHelp         Intent = "HELP"
	IntentUnknown      Intent = "UNKNOWN"
)

// RouterOutput is the classification of one message.
type RouterOutput struct {
	Intent   Intent `json:"intent"`
	Command  string `json:"command,omitempty"`  // slash command without bot suffix, e.g. "/done"
	Argument string `json:"argument,omitempty"` // trimmed text after the command, or the whole message
}
