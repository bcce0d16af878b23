// Package usecase implements the derived-statistics computation for the
// analytics feature. Everything here is a pure function of a task snapshot
// and an instant; nothing is cached or persisted.
package usecase

import (
	"errors"
	"math"
	"time"

	"task_backend/internal/feature/tasks/domain/entity"
)

// Window selects how far back from now the statistics look.
type Window string

// Recognized window values.
const (
	WindowWeek  Window = "week"  // trailing 7 days
	WindowMonth Window = "month" // trailing 30 days
	WindowYear  Window = "year"  // trailing 365 days
	WindowAll   Window = "all"   // unbounded
)

// ErrInvalidWindow is returned for a window value outside the recognized set.
var ErrInvalidWindow = errors.New("invalid time range")

// ParseWindow validates a caller-supplied range string. The empty string
// defaults to WindowWeek, matching the dashboard's initial view.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowWeek, WindowMonth, WindowYear, WindowAll:
		return Window(s), nil
	case "":
		return WindowWeek, nil
	}
	return "", ErrInvalidWindow
}

// cutoff returns the inclusive lower bound of the window, or false for the
// unbounded window. Windows are rolling instants, not calendar-aligned.
func (w Window) cutoff(now time.Time) (time.Time, bool) {
	switch w {
	case WindowWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case WindowMonth:
		return now.Add(-30 * 24 * time.Hour), true
	case WindowYear:
		return now.Add(-365 * 24 * time.Hour), true
	}
	return time.Time{}, false
}

// PriorityDist is the per-priority task count over the window.
type PriorityDist struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// DayBucket is one calendar day of the trailing-week activity series.
type DayBucket struct {
	// Date is the abbreviated weekday label of the bucket.
	Date string `json:"date"`
	// Total is how many tasks were created that day.
	Total int `json:"total"`
	// Completed is how many of those are currently done.
	Completed int `json:"completed"`
}

// Snapshot is the full statistics record returned to the caller.
type Snapshot struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	Pending        int            `json:"pending"`
	Overdue        int            `json:"overdue"`
	CompletionRate int            `json:"completionRate"`
	PriorityDist   PriorityDist   `json:"priorityDist"`
	CategoryDist   map[string]int `json:"categoryDist"`
	TasksByDay     []DayBucket    `json:"tasksByDay"`
}

// Compute derives the statistics snapshot from the user's full task set.
//
// Window membership is decided by CreatedAt, not the due date. The
// tasksByDay series deliberately ignores the window: it always covers the
// trailing 7 local calendar days (today included) over the full set, with
// midnight-to-midnight boundaries in now's location.
func Compute(tasks []entity.Task, w Window, now time.Time) Snapshot {
	inWindow := tasks
	if lower, bounded := w.cutoff(now); bounded {
		inWindow = make([]entity.Task, 0, len(tasks))
		for _, t := range tasks {
			if !t.CreatedAt.Before(lower) {
				inWindow = append(inWindow, t)
			}
		}
	}

	snap := Snapshot{
		CategoryDist: map[string]int{},
		TasksByDay:   make([]DayBucket, 0, 7),
	}
	snap.Total = len(inWindow)

	for _, t := range inWindow {
		if t.Completed {
			snap.Completed++
		} else {
			snap.Pending++
			if t.DueDate != nil && t.DueDate.Before(now) {
				snap.Overdue++
			}
		}

		switch t.Priority {
		case entity.PriorityHigh:
			snap.PriorityDist.High++
		case entity.PriorityMedium:
			snap.PriorityDist.Medium++
		case entity.PriorityLow:
			snap.PriorityDist.Low++
		}

		snap.CategoryDist[t.Category]++
	}

	if snap.Total > 0 {
		snap.CompletionRate = int(math.Round(float64(snap.Completed) / float64(snap.Total) * 100))
	}

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		bucket := DayBucket{Date: dayStart.Format("Mon")}
		for _, t := range tasks {
			if t.CreatedAt.Before(dayStart) || !t.CreatedAt.Before(dayEnd) {
				continue
			}
			bucket.Total++
			if t.Completed {
				bucket.Completed++
			}
		}
		snap.TasksByDay = append(snap.TasksByDay, bucket)
	}

	return snap
}
