package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task_backend/internal/feature/tasks/domain/entity"
)

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"week", "month", "year", "all"} {
		w, err := ParseWindow(valid)
		require.NoError(t, err)
		assert.Equal(t, Window(valid), w)
	}

	w, err := ParseWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowWeek, w, "empty range falls back to the weekly view")

	_, err = ParseWindow("fortnight")
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func task(created time.Time, completed bool, mutate ...func(*entity.Task)) entity.Task {
	t := entity.Task{
		Title:     "t",
		Priority:  entity.PriorityMedium,
		Category:  entity.CategoryOther,
		Completed: completed,
		CreatedAt: created,
	}
	for _, m := range mutate {
		m(&t)
	}
	return t
}

func withDue(due time.Time) func(*entity.Task) {
	return func(t *entity.Task) { t.DueDate = &due }
}

func TestCompute_EmptySet(t *testing.T) {
	snap := Compute(nil, WindowAll, time.Now())

	assert.Zero(t, snap.Total)
	assert.Zero(t, snap.CompletionRate, "completion rate of an empty set is 0, not NaN")
	assert.Len(t, snap.TasksByDay, 7, "the activity series always spans 7 days")
	assert.NotNil(t, snap.CategoryDist)
}

func TestCompute_CompletionRateRounding(t *testing.T) {
	now := time.Now()

	// 1 of 3 completed: 33.33 rounds to 33. 2 of 3: 66.67 rounds to 67.
	oneOfThree := []entity.Task{
		task(now, true), task(now, false), task(now, false),
	}
	twoOfThree := []entity.Task{
		task(now, true), task(now, true), task(now, false),
	}

	assert.Equal(t, 33, Compute(oneOfThree, WindowAll, now).CompletionRate)
	assert.Equal(t, 67, Compute(twoOfThree, WindowAll, now).CompletionRate)
	assert.Equal(t, 100, Compute([]entity.Task{task(now, true)}, WindowAll, now).CompletionRate)
}

func TestCompute_WindowFiltersByCreation(t *testing.T) {
	now := time.Now()
	tasks := []entity.Task{
		task(now.Add(-2*24*time.Hour), false),   // inside week
		task(now.Add(-10*24*time.Hour), true),   // inside month only
		task(now.Add(-100*24*time.Hour), false), // inside year only
		task(now.Add(-400*24*time.Hour), true),  // all-time only
	}

	assert.Equal(t, 1, Compute(tasks, WindowWeek, now).Total)
	assert.Equal(t, 2, Compute(tasks, WindowMonth, now).Total)
	assert.Equal(t, 3, Compute(tasks, WindowYear, now).Total)
	assert.Equal(t, 4, Compute(tasks, WindowAll, now).Total)
}

func TestCompute_Overdue(t *testing.T) {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tasks := []entity.Task{
		task(now, false, withDue(yesterday)), // overdue
		task(now, true, withDue(yesterday)),  // done, not overdue
		task(now, false, withDue(tomorrow)),  // not due yet
		task(now, false),                     // no due date
	}

	snap := Compute(tasks, WindowAll, now)
	assert.Equal(t, 1, snap.Overdue, "only pending tasks past their due date count")
	assert.Equal(t, 3, snap.Pending)
}

func TestCompute_Distributions(t *testing.T) {
	now := time.Now()
	tasks := []entity.Task{
		task(now, false, func(t *entity.Task) { t.Priority = entity.PriorityHigh; t.Category = entity.CategoryWork }),
		task(now, false, func(t *entity.Task) { t.Priority = entity.PriorityHigh; t.Category = entity.CategoryStudy }),
		task(now, false, func(t *entity.Task) { t.Priority = entity.PriorityLow; t.Category = entity.CategoryWork }),
		task(now, false), // medium / other
	}

	snap := Compute(tasks, WindowAll, now)

	assert.Equal(t, PriorityDist{High: 2, Medium: 1, Low: 1}, snap.PriorityDist)
	assert.Equal(t, map[string]int{
		entity.CategoryWork:  2,
		entity.CategoryStudy: 1,
		entity.CategoryOther: 1,
	}, snap.CategoryDist)
}

func TestCompute_TasksByDay(t *testing.T) {
	// Fixed local instant keeps the day buckets deterministic.
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.Local)

	tasks := []entity.Task{
		task(time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local), true),   // today, done
		task(time.Date(2026, 9, 1, 23, 59, 0, 0, time.Local), false), // today
		task(time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local), false), // two days back
		task(time.Date(2026, 8, 20, 12, 0, 0, 0, time.Local), true),  // outside the series
	}

	snap := Compute(tasks, WindowWeek, now)
	require.Len(t, snap.TasksByDay, 7)

	today := snap.TasksByDay[6]
	assert.Equal(t, "Tue", today.Date)
	assert.Equal(t, 2, today.Total, "both tasks created today are counted")
	assert.Equal(t, 1, today.Completed)

	twoBack := snap.TasksByDay[4]
	assert.Equal(t, 1, twoBack.Total)
	assert.Zero(t, twoBack.Completed)

	var seriesTotal int
	for _, day := range snap.TasksByDay {
		seriesTotal += day.Total
	}
	assert.Equal(t, 3, seriesTotal, "the 10-day-old task is out of the series")
}

func TestCompute_TasksByDayIgnoresWindow(t *testing.T) {
	now := time.Now()
	// Created 2 days ago: outside a hypothetical zero-width window but inside
	// the trailing-7-day series. The series reads the FULL set.
	tasks := []entity.Task{
		task(now.Add(-2*24*time.Hour - time.Hour), false),
		task(now.Add(-40*24*time.Hour), false), // outside month window AND series
	}

	snap := Compute(tasks, WindowWeek, now)
	assert.Equal(t, 1, snap.Total, "window stats exclude the old task")

	var seriesTotal int
	for _, day := range snap.TasksByDay {
		seriesTotal += day.Total
	}
	assert.Equal(t, 1, seriesTotal)
}
