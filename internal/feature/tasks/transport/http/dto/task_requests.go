// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

import "time"

// SubtaskSeed is one entry of the optional initial subtask list on creation.
type SubtaskSeed struct {
	Title string `json:"title" binding:"required"`
}

// CreateTaskReq represents the request body for POST /api/tasks.
// Enum values are checked in the usecase so unrecognized input is rejected,
// not coerced.
type CreateTaskReq struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	DueDate     *time.Time    `json:"dueDate"`
	DueTime     string        `json:"dueTime"`
	Priority    string        `json:"priority"`
	Category    string        `json:"category"`
	Subtasks    []SubtaskSeed `json:"subtasks"`
}

// UpdateTaskReq represents the request body for PUT /api/tasks/:id.
// Nil fields are omitted from the merge and leave the stored value unchanged.
// A pointer field cannot tell JSON null apart from an absent key, so a due
// date set once cannot be cleared through this endpoint, only replaced.
type UpdateTaskReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	DueTime     *string    `json:"dueTime"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"`
	Completed   *bool      `json:"completed"`
}

// AddSubtaskReq represents the request body for POST /api/tasks/:id/subtasks.
type AddSubtaskReq struct {
	Title string `json:"title" binding:"required"`
}

// UpdateSubtaskReq represents the request body for
// PUT /api/tasks/:id/subtasks/:subtaskId.
type UpdateSubtaskReq struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
