package model

import "time"

// EventKind names the kind of write that changed the task store.
type EventKind string

const (
	EventInserted EventKind = "inserted"
	EventUpdated  EventKind = "updated"
	EventDeleted  EventKind = "deleted"
)

// TaskEvent is published on the change feed after every successful write.
type TaskEvent struct {
	Kind   EventKind // Write kind
	TaskID int64     // Affected task (0 for bulk writes)
	At     time.Time // When the write was committed
}
