// Package editor holds the per-client editing state and the pure transition
// function that drives it.
package editor

import (
	"unicode/utf8"

	"smart-todo/internal/task"
	"smart-todo/pkg/smartparse"
)

// minSuggestionLength is the title length above which suggestions are shown.
const minSuggestionLength = 2

// Reduce returns the state that follows s after ev. s is not modified.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case ShowAdd:
		s = clearForm(s)
		s.Open = true

	case ShowEdit:
		s = clearForm(s)
		s.Open = true
		s.EditingID = e.Task.ID
		s.Title = e.Task.Title
		s.Description = e.Task.Description
		s.Priority = e.Task.Priority
		s.DueAt = e.Task.DueAt
		s.HasReminder = e.Task.HasReminder

	case Hide:
		s = clearForm(s)

	case TitleChanged:
		s.Title = e.Title
		s.Suggestions = nil
		if utf8.RuneCountInString(e.Title) > minSuggestionLength {
			s.Suggestions = smartparse.Suggest(e.Title)
		}

	case DescriptionChanged:
		s.Description = e.Description

	case PriorityChanged:
		s.Priority = e.Priority

	case DueChanged:
		s.DueAt = e.DueAt

	case ReminderChanged:
		s.HasReminder = e.On

	case SuggestionApplied:
		s = applyParsed(s, e.Parsed)
		s.Suggestions = nil

	case QuickAddParsed:
		s = applyParsed(s, e.Parsed)

	case TaskDeleted:
		deleted := e.Task
		s.Deleted = &deleted
		s.UndoVisible = true
		s.Message = task.MsgDeleted

	case UndoDismissed:
		s.Deleted = nil
		s.UndoVisible = false

	case UndoCompleted:
		s.Deleted = nil
		s.UndoVisible = false
		s.Message = task.MsgRestored

	case MessageShown:
		s.Message = e.Message

	case MessageCleared:
		s.Message = ""

	case TabSelected:
		if v, err := task.ParseView(string(e.Tab)); err == nil {
			s.Tab = v
		}
	}
	return s
}

func clearForm(s State) State {
	s.Open = false
	s.EditingID = 0
	s.Title = ""
	s.Description = ""
	s.Priority = Initial().Priority
	s.DueAt = nil
	s.HasReminder = false
	s.Suggestions = nil
	return s
}

func applyParsed(s State, p smartparse.ParsedTask) State {
	s.Title = p.Title
	s.Priority = p.Priority
	s.DueAt = p.DueDate
	s.HasReminder = p.HasReminder
	return s
}

// SaveInput converts the form into the input of task.UseCase.Save.
func (s State) SaveInput() task.SaveInput {
	return task.SaveInput{
		ID:          s.EditingID,
		Title:       s.Title,
		Description: s.Description,
		Priority:    s.Priority,
		DueAt:       s.DueAt,
		HasReminder: s.HasReminder,
	}
}
