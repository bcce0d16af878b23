package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a mock implementation of the TaskRepository
// interface. It simulates database operations during testing.
type mockTaskRepository struct {
	FindByOwnerFunc   func(ctx context.Context, userID uint) ([]entity.Task, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*entity.Task, error)
	CreateFunc        func(ctx context.Context, task *entity.Task) error
	UpdateFunc        func(ctx context.Context, task *entity.Task) error
	DeleteFunc        func(ctx context.Context, id uint) error
	AddSubtaskFunc    func(ctx context.Context, sub *entity.Subtask) error
	UpdateSubtaskFunc func(ctx context.Context, sub *entity.Subtask) error
	RemoveSubtaskFunc func(ctx context.Context, taskID, subtaskID uint) error
}

func (m *mockTaskRepository) FindByOwner(ctx context.Context, userID uint) ([]entity.Task, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	task.ID = 1
	return nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTaskRepository) AddSubtask(ctx context.Context, sub *entity.Subtask) error {
	if m.AddSubtaskFunc != nil {
		return m.AddSubtaskFunc(ctx, sub)
	}
	sub.ID = 1
	return nil
}

func (m *mockTaskRepository) UpdateSubtask(ctx context.Context, sub *entity.Subtask) error {
	if m.UpdateSubtaskFunc != nil {
		return m.UpdateSubtaskFunc(ctx, sub)
	}
	return nil
}

func (m *mockTaskRepository) RemoveSubtask(ctx context.Context, taskID, subtaskID uint) error {
	if m.RemoveSubtaskFunc != nil {
		return m.RemoveSubtaskFunc(ctx, taskID, subtaskID)
	}
	return nil
}

// ownedTaskRepo serves one stored task, the usual fixture for ownership tests.
func ownedTaskRepo(task *entity.Task) *mockTaskRepository {
	return &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
			if id == task.ID {
				copied := *task
				copied.Subtasks = append([]entity.Subtask(nil), task.Subtasks...)
				return &copied, nil
			}
			return nil, ErrTaskNotFound
		},
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskUsecase_Create(t *testing.T) {
	t.Run("defaults applied and ownership assigned to caller", func(t *testing.T) {
		var created *entity.Task
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				task.ID = 10
				created = task
				return nil
			},
		}
		uc := NewTaskUsecase(repo)

		task, err := uc.Create(context.Background(), 7, CreateTaskInput{Title: "Buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.UserID != 7 {
			t.Errorf("owner must be the caller, got %d", created.UserID)
		}
		if task.Priority != entity.PriorityMedium {
			t.Errorf("expected default priority medium, got %q", task.Priority)
		}
		if task.Category != entity.CategoryOther {
			t.Errorf("expected default category other, got %q", task.Category)
		}
		if task.Completed {
			t.Error("new tasks start incomplete")
		}
		if len(task.Subtasks) != 0 {
			t.Errorf("expected empty subtask collection, got %d", len(task.Subtasks))
		}
		if task.CreatedAt.IsZero() {
			t.Error("CreatedAt is not set")
		}
	})

	t.Run("initial subtasks are seeded incomplete", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		task, err := uc.Create(context.Background(), 7, CreateTaskInput{
			Title:         "Plan trip",
			SubtaskTitles: []string{"book flights", "pack"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(task.Subtasks) != 2 {
			t.Fatalf("expected 2 subtasks, got %d", len(task.Subtasks))
		}
		for _, s := range task.Subtasks {
			if s.Completed {
				t.Errorf("subtask %q must start incomplete", s.Title)
			}
			if s.CreatedAt.IsZero() {
				t.Errorf("subtask %q has no creation timestamp", s.Title)
			}
		}
	})

	t.Run("rejected input never reaches the store", func(t *testing.T) {
		tests := []struct {
			name    string
			input   CreateTaskInput
			wantErr error
		}{
			{"empty title", CreateTaskInput{Title: "   "}, ErrEmptyTitle},
			{"unknown priority", CreateTaskInput{Title: "x", Priority: "urgent"}, ErrInvalidPriority},
			{"unknown category", CreateTaskInput{Title: "x", Category: "chores"}, ErrInvalidCategory},
			{"empty subtask title", CreateTaskInput{Title: "x", SubtaskTitles: []string{""}}, ErrEmptyTitle},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &mockTaskRepository{
					CreateFunc: func(ctx context.Context, task *entity.Task) error {
						t.Error("store must not be reached on validation failure")
						return nil
					},
				}
				uc := NewTaskUsecase(repo)

				_, err := uc.Create(context.Background(), 7, tt.input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			})
		}
	})
}

func TestTaskUsecase_OwnershipIndistinguishable(t *testing.T) {
	// Task 5 belongs to user 1. User 2 probing it must get exactly the error
	// user 2 gets for a task that does not exist at all.
	stored := &entity.Task{ID: 5, UserID: 1, Title: "secret", Priority: entity.PriorityMedium, Category: entity.CategoryOther}
	uc := NewTaskUsecase(ownedTaskRepo(stored))
	ctx := context.Background()

	probe := func(name string, op func() error) {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrTaskNotFound) {
				t.Errorf("expected ErrTaskNotFound, got %v", err)
			}
		})
	}

	probe("update foreign task", func() error {
		_, err := uc.Update(ctx, 2, 5, UpdateTaskInput{Completed: boolPtr(true)})
		return err
	})
	probe("update missing task", func() error {
		_, err := uc.Update(ctx, 2, 999, UpdateTaskInput{Completed: boolPtr(true)})
		return err
	})
	probe("delete foreign task", func() error {
		return uc.Delete(ctx, 2, 5)
	})
	probe("add subtask to foreign task", func() error {
		_, err := uc.AddSubtask(ctx, 2, 5, "sneak in")
		return err
	})
	probe("update subtask of foreign task", func() error {
		_, err := uc.UpdateSubtask(ctx, 2, 5, 1, UpdateSubtaskInput{Completed: boolPtr(true)})
		return err
	})
	probe("delete subtask of foreign task", func() error {
		_, err := uc.DeleteSubtask(ctx, 2, 5, 1)
		return err
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	due := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	base := func() *entity.Task {
		return &entity.Task{
			ID: 5, UserID: 1,
			Title: "original", Description: "desc",
			DueDate: &due, DueTime: "09:00",
			Priority: entity.PriorityLow, Category: entity.CategoryWork,
		}
	}

	t.Run("omitted fields stay unchanged", func(t *testing.T) {
		stored := base()
		var saved *entity.Task
		repo := ownedTaskRepo(stored)
		repo.UpdateFunc = func(ctx context.Context, task *entity.Task) error {
			saved = task
			return nil
		}
		uc := NewTaskUsecase(repo)

		got, err := uc.Update(context.Background(), 1, 5, UpdateTaskInput{Completed: boolPtr(true)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Completed {
			t.Error("completed was not merged")
		}
		if got.Title != "original" || got.Description != "desc" || got.DueTime != "09:00" {
			t.Errorf("untouched fields changed: %+v", got)
		}
		if got.Priority != entity.PriorityLow || got.Category != entity.CategoryWork {
			t.Errorf("enum fields changed: %+v", got)
		}
		if saved == nil {
			t.Fatal("update was not persisted")
		}
		if saved.UserID != 1 {
			t.Errorf("ownership changed on update: %d", saved.UserID)
		}
	})

	t.Run("enum validation on merge", func(t *testing.T) {
		uc := NewTaskUsecase(ownedTaskRepo(base()))

		if _, err := uc.Update(context.Background(), 1, 5, UpdateTaskInput{Priority: strPtr("asap")}); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
		if _, err := uc.Update(context.Background(), 1, 5, UpdateTaskInput{Category: strPtr("misc")}); !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
		if _, err := uc.Update(context.Background(), 1, 5, UpdateTaskInput{Title: strPtr(" ")}); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})
}

func TestTaskUsecase_Subtasks(t *testing.T) {
	base := func() *entity.Task {
		return &entity.Task{
			ID: 5, UserID: 1, Title: "parent",
			Priority: entity.PriorityMedium, Category: entity.CategoryOther,
			Subtasks: []entity.Subtask{
				{ID: 11, TaskID: 5, Title: "first"},
				{ID: 12, TaskID: 5, Title: "second"},
			},
		}
	}

	t.Run("add returns grown parent", func(t *testing.T) {
		repo := ownedTaskRepo(base())
		repo.AddSubtaskFunc = func(ctx context.Context, sub *entity.Subtask) error {
			sub.ID = 13
			return nil
		}
		uc := NewTaskUsecase(repo)

		task, err := uc.AddSubtask(context.Background(), 1, 5, "third")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(task.Subtasks) != 3 {
			t.Fatalf("expected 3 subtasks, got %d", len(task.Subtasks))
		}
		last := task.Subtasks[2]
		if last.ID != 13 || last.Title != "third" || last.Completed {
			t.Errorf("unexpected appended subtask: %+v", last)
		}
	})

	t.Run("add with empty title leaves collection unchanged", func(t *testing.T) {
		repo := ownedTaskRepo(base())
		repo.AddSubtaskFunc = func(ctx context.Context, sub *entity.Subtask) error {
			t.Error("store must not be reached with an empty title")
			return nil
		}
		uc := NewTaskUsecase(repo)

		_, err := uc.AddSubtask(context.Background(), 1, 5, "  ")
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("update merges completed flag", func(t *testing.T) {
		repo := ownedTaskRepo(base())
		var saved *entity.Subtask
		repo.UpdateSubtaskFunc = func(ctx context.Context, sub *entity.Subtask) error {
			saved = sub
			return nil
		}
		uc := NewTaskUsecase(repo)

		task, err := uc.UpdateSubtask(context.Background(), 1, 5, 12, UpdateSubtaskInput{Completed: boolPtr(true)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil || saved.ID != 12 || !saved.Completed {
			t.Errorf("wrong subtask persisted: %+v", saved)
		}
		if saved.Title != "second" {
			t.Errorf("omitted title changed: %q", saved.Title)
		}
		if len(task.Subtasks) != 2 {
			t.Errorf("collection size changed on update: %d", len(task.Subtasks))
		}
	})

	t.Run("unknown subtask id", func(t *testing.T) {
		uc := NewTaskUsecase(ownedTaskRepo(base()))

		if _, err := uc.UpdateSubtask(context.Background(), 1, 5, 99, UpdateSubtaskInput{}); !errors.Is(err, ErrSubtaskNotFound) {
			t.Errorf("expected ErrSubtaskNotFound, got %v", err)
		}
		if _, err := uc.DeleteSubtask(context.Background(), 1, 5, 99); !errors.Is(err, ErrSubtaskNotFound) {
			t.Errorf("expected ErrSubtaskNotFound, got %v", err)
		}
	})

	t.Run("delete returns shrunk parent", func(t *testing.T) {
		repo := ownedTaskRepo(base())
		uc := NewTaskUsecase(repo)

		task, err := uc.DeleteSubtask(context.Background(), 1, 5, 11)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(task.Subtasks) != 1 {
			t.Fatalf("expected 1 subtask, got %d", len(task.Subtasks))
		}
		if task.Subtasks[0].ID != 12 {
			t.Errorf("wrong subtask removed: %+v", task.Subtasks)
		}
	})
}
