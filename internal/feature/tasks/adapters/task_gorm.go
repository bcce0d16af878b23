// Package adapters provides the repository implementations for the tasks feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskGorm is the GORM implementation of the TaskRepository interface.
// The subtask collection is stored in its own table but always loaded and
// mutated through the parent task, so the aggregate stays the unit of access.
type taskGorm struct {
	db *gorm.DB
}

// Compile-time check that taskGorm satisfies usecase.TaskRepository.
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskRepository creates a taskGorm bound to the given gorm.DB connection.
func NewTaskRepository(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// subtaskOrder keeps collections in insertion order on every load.
func subtaskOrder(db *gorm.DB) *gorm.DB {
	return db.Order("subtasks.id ASC")
}

// FindByOwner returns all tasks of one user with their subtask collections.
func (r *taskGorm) FindByOwner(ctx context.Context, userID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks", subtaskOrder).
		Where("user_id = ?", userID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID loads one task aggregate. Ownership is checked by the caller.
func (r *taskGorm) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var task entity.Task
	err := r.db.WithContext(ctx).
		Preload("Subtasks", subtaskOrder).
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Create inserts the task together with its initial subtasks in one pass.
func (r *taskGorm) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Update persists the task's scalar columns. Subtask rows are managed by the
// dedicated subtask methods, so the association is skipped here.
func (r *taskGorm) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).
		Omit("Subtasks").
		Save(task).Error
}

// Delete removes the task row and its subtasks. The select-delete keeps the
// cascade working on databases where the FK constraint was not installed.
func (r *taskGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&entity.Subtask{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Task{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrTaskNotFound
		}
		return nil
	})
}

// AddSubtask appends one subtask row to its parent's collection.
func (r *taskGorm) AddSubtask(ctx context.Context, sub *entity.Subtask) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// UpdateSubtask persists changed fields of one subtask row.
func (r *taskGorm) UpdateSubtask(ctx context.Context, sub *entity.Subtask) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// RemoveSubtask deletes one subtask row of the given task.
func (r *taskGorm) RemoveSubtask(ctx context.Context, taskID, subtaskID uint) error {
	res := r.db.WithContext(ctx).
		Where("task_id = ? AND id = ?", taskID, subtaskID).
		Delete(&entity.Subtask{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSubtaskNotFound
	}
	return nil
}
