package usecase

import (
	"context"
	"time"

	"task_backend/internal/feature/tasks/domain/entity"
)

// TaskSource provides the authenticated user's full task set. The tasks
// feature's repository satisfies it.
type TaskSource interface {
	FindByOwner(ctx context.Context, userID uint) ([]entity.Task, error)
}

// analyticsUsecase computes read-only statistics on demand. It holds no
// state of its own beyond the task source.
type analyticsUsecase struct {
	tasks TaskSource
}

// NewAnalyticsUsecase creates a new analyticsUsecase instance.
func NewAnalyticsUsecase(tasks TaskSource) *analyticsUsecase {
	return &analyticsUsecase{tasks: tasks}
}

// Stats loads the user's tasks and derives the snapshot for the window.
func (u *analyticsUsecase) Stats(ctx context.Context, userID uint, w Window) (Snapshot, error) {
	tasks, err := u.tasks.FindByOwner(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	return Compute(tasks, w, time.Now()), nil
}

// Tasks returns the unfiltered task set for the export endpoints.
func (u *analyticsUsecase) Tasks(ctx context.Context, userID uint) ([]entity.Task, error) {
	return u.tasks.FindByOwner(ctx, userID)
}
