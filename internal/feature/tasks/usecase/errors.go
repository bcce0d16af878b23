// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when a task does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable so a
	// caller cannot learn whether someone else's task ID exists.
	ErrTaskNotFound = errors.New("task not found")

	// ErrSubtaskNotFound is returned when the subtask ID is absent from the
	// parent task's collection.
	ErrSubtaskNotFound = errors.New("subtask not found")

	// ErrEmptyTitle is returned when a task or subtask title is empty.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrInvalidPriority is returned for a priority outside low/medium/high.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidCategory is returned for an unrecognized category value.
	ErrInvalidCategory = errors.New("invalid category")
)
