// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Priority levels a task can hold.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Categories a task can belong to.
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryShopping = "shopping"
	CategoryHealth   = "health"
	CategoryStudy    = "study"
	CategoryOther    = "other"
)

// ValidPriority reports whether p is one of the recognized priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidCategory reports whether c is one of the recognized category values.
func ValidCategory(c string) bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryShopping,
		CategoryHealth, CategoryStudy, CategoryOther:
		return true
	}
	return false
}

// Task is the aggregate root of the tasks feature. It belongs to exactly one
// user; the owner never changes after creation, and its subtasks live and die
// with it. Two concurrent updates to the same task are last-write-wins at the
// store, there is no version column.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the owning user. Every read and mutation is scoped by it.
	UserID uint `gorm:"index;not null" json:"-"`

	// Title is the short description shown in listings. Required.
	Title string `gorm:"size:255;not null" json:"title"`

	// Description is free-form detail text.
	Description string `json:"description"`

	// DueDate is the optional date the task is due.
	DueDate *time.Time `json:"dueDate"`

	// DueTime is the optional time-of-day string attached to DueDate.
	DueTime string `gorm:"size:16" json:"dueTime"`

	// Priority is one of the Priority* constants. Defaults to medium.
	Priority string `gorm:"size:16;not null;default:medium" json:"priority"`

	// Category is one of the Category* constants. Defaults to other.
	Category string `gorm:"size:16;not null;default:other" json:"category"`

	// Completed marks the task done. It is independent of the subtasks'
	// completion states; nothing derives it from them.
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// Subtasks is the embedded collection, ordered by insertion. Deleting the
	// task cascades to them.
	Subtasks []Subtask `gorm:"constraint:OnDelete:CASCADE" json:"subtasks"`

	// CreatedAt is set once at creation and never changes.
	CreatedAt time.Time `json:"createdAt"`
}

// Subtask is a value object embedded in its parent task's collection. It has
// no lifecycle of its own and is only reachable through the parent.
type Subtask struct {
	// ID identifies the subtask within its parent's collection.
	ID uint `gorm:"primaryKey" json:"id"`

	// TaskID is the owning task.
	TaskID uint `gorm:"index;not null" json:"-"`

	// Title is the subtask text. Required.
	Title string `gorm:"size:255;not null" json:"title"`

	// Completed marks the subtask done.
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// CreatedAt is set when the subtask is appended.
	CreatedAt time.Time `json:"createdAt"`
}
