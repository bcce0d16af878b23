// Package usecase implements the business logic for the tasks feature.
package usecase

import (
	"context"
	"strings"
	"time"

	"task_backend/internal/feature/tasks/domain/entity"
)

// TaskRepository abstracts the persistence layer for task aggregates.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters). Lookups are by ID alone; the
// ownership check is a separate, explicit step in the usecase.
type TaskRepository interface {
	// FindByOwner returns every task owned by the user, subtasks included.
	FindByOwner(ctx context.Context, userID uint) ([]entity.Task, error)

	// FindByID retrieves one task with its subtask collection.
	// It returns ErrTaskNotFound when no such task exists.
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// Create persists a new task together with its initial subtasks.
	Create(ctx context.Context, task *entity.Task) error

	// Update persists changed scalar fields of the task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task and, by cascade, its subtasks.
	Delete(ctx context.Context, id uint) error

	// AddSubtask appends a subtask to its parent's collection.
	AddSubtask(ctx context.Context, sub *entity.Subtask) error

	// UpdateSubtask persists changed fields of a subtask.
	UpdateSubtask(ctx context.Context, sub *entity.Subtask) error

	// RemoveSubtask deletes one subtask row of the given task.
	RemoveSubtask(ctx context.Context, taskID, subtaskID uint) error
}

// CreateTaskInput carries the attributes accepted at task creation.
// Zero-valued enum fields fall back to their defaults.
type CreateTaskInput struct {
	Title         string
	Description   string
	DueDate       *time.Time
	DueTime       string
	Priority      string
	Category      string
	SubtaskTitles []string
}

// UpdateTaskInput is a partial attribute set. Nil fields are left unchanged
// on the stored task.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	DueTime     *string
	Priority    *string
	Category    *string
	Completed   *bool
}

// UpdateSubtaskInput is a partial attribute set for one subtask.
type UpdateSubtaskInput struct {
	Title     *string
	Completed *bool
}

// taskUsecase implements the ownership-scoped task operations.
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase creates a new taskUsecase instance.
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// ownedBy is the single authorization predicate for the feature. Every
// mutation path runs it right after the parent task lookup.
func ownedBy(userID uint, t *entity.Task) bool {
	return t.UserID == userID
}

// findOwned loads a task and verifies ownership. A missing task and a task
// owned by someone else produce the same ErrTaskNotFound.
func (u *taskUsecase) findOwned(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !ownedBy(userID, task) {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// List returns the caller's full task set. Ordering and filtering are left to
// the presentation layer.
func (u *taskUsecase) List(ctx context.Context, userID uint) ([]entity.Task, error) {
	return u.tasks.FindByOwner(ctx, userID)
}

// Create validates the input, assigns ownership and creation timestamps, and
// persists the new aggregate.
func (u *taskUsecase) Create(ctx context.Context, userID uint, in CreateTaskInput) (*entity.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrEmptyTitle
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}
	category := in.Category
	if category == "" {
		category = entity.CategoryOther
	}
	if !entity.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	now := time.Now()
	task := &entity.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		DueTime:     in.DueTime,
		Priority:    priority,
		Category:    category,
		Completed:   false,
		CreatedAt:   now,
		Subtasks:    make([]entity.Subtask, 0, len(in.SubtaskTitles)),
	}
	for _, title := range in.SubtaskTitles {
		if strings.TrimSpace(title) == "" {
			return nil, ErrEmptyTitle
		}
		task.Subtasks = append(task.Subtasks, entity.Subtask{
			Title:     title,
			Completed: false,
			CreatedAt: now,
		})
	}

	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update merges the given fields onto the stored task. Ownership never
// changes and CreatedAt is immutable; neither is part of the input.
func (u *taskUsecase) Update(ctx context.Context, userID, taskID uint, in UpdateTaskInput) (*entity.Task, error) {
	task, err := u.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, ErrEmptyTitle
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.DueTime != nil {
		task.DueTime = *in.DueTime
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, ErrInvalidPriority
		}
		task.Priority = *in.Priority
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, ErrInvalidCategory
		}
		task.Category = *in.Category
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}

	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task and all its subtasks.
func (u *taskUsecase) Delete(ctx context.Context, userID, taskID uint) error {
	task, err := u.findOwned(ctx, userID, taskID)
	if err != nil {
		return err
	}
	return u.tasks.Delete(ctx, task.ID)
}

// AddSubtask appends a new subtask to the owned task and returns the updated
// parent.
func (u *taskUsecase) AddSubtask(ctx context.Context, userID, taskID uint, title string) (*entity.Task, error) {
	task, err := u.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	sub := &entity.Subtask{
		TaskID:    task.ID,
		Title:     title,
		Completed: false,
		CreatedAt: time.Now(),
	}
	if err := u.tasks.AddSubtask(ctx, sub); err != nil {
		return nil, err
	}
	task.Subtasks = append(task.Subtasks, *sub)
	return task, nil
}

// UpdateSubtask merges the given fields onto one subtask of the owned task
// and returns the updated parent.
func (u *taskUsecase) UpdateSubtask(ctx context.Context, userID, taskID, subtaskID uint, in UpdateSubtaskInput) (*entity.Task, error) {
	task, err := u.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range task.Subtasks {
		if task.Subtasks[i].ID == subtaskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrSubtaskNotFound
	}

	sub := &task.Subtasks[idx]
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, ErrEmptyTitle
		}
		sub.Title = *in.Title
	}
	if in.Completed != nil {
		sub.Completed = *in.Completed
	}

	if err := u.tasks.UpdateSubtask(ctx, sub); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteSubtask removes one subtask from the owned task and returns the
// updated parent.
func (u *taskUsecase) DeleteSubtask(ctx context.Context, userID, taskID, subtaskID uint) (*entity.Task, error) {
	task, err := u.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range task.Subtasks {
		if task.Subtasks[i].ID == subtaskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrSubtaskNotFound
	}

	if err := u.tasks.RemoveSubtask(ctx, task.ID, subtaskID); err != nil {
		return nil, err
	}
	task.Subtasks = append(task.Subtasks[:idx], task.Subtasks[idx+1:]...)
	return task, nil
}
