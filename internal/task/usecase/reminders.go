package usecase

import (
	"context"
	"fmt"
)

// RestoreReminders re-arms the reminder of every stored task that still
// needs one. Tasks due within the current minute are skipped.
func (uc *implUseCase) RestoreReminders(ctx context.Context) (int, error) {
	tasks, err := uc.repo.ListWithReminders(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RestoreReminders: %v", err)
		return 0, fmt.Errorf("list tasks with reminders: %w", err)
	}

	armed := 0
	for _, t := range tasks {
		if uc.reminders.Schedule(ctx, t) {
			armed++
		}
	}
	uc.l.Infof(ctx, "uc.RestoreReminders: armed %d of %d reminders", armed, len(tasks))
	return armed, nil
}
