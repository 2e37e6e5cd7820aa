package router

const (
	LogPrefixClassify = "internal.router.Classify"
)

var commands = map[string]Intent{
	"/start":   IntentStart,
	"/help":    IntentHelp,
	"/list":    IntentListTasks,
	"/tasks":   IntentListTasks,
	"/suggest": IntentSuggest,
	"/done":    IntentCompleteTask,
	"/toggle":  IntentCompleteTask,
	"/delete":  IntentDeleteTask,
	"/undo":    IntentUndo,
	"/stats":   IntentCounts,
	"/add":     IntentCreateTask,
}
