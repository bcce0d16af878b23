package usecase

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"task_backend/internal/feature/tasks/domain/entity"
)

// csvHeader is the column layout of the CSV export.
var csvHeader = []string{"Title", "Description", "Category", "Priority", "Status", "Due Date", "Created"}

// ExportJSON renders the full task set as an indented structural dump.
func ExportJSON(tasks []entity.Task) ([]byte, error) {
	return json.MarshalIndent(tasks, "", "  ")
}

// ExportCSV renders the full task set as CSV. encoding/csv quotes cells that
// contain commas or quotes and doubles embedded quotes.
func ExportCSV(tasks []entity.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range tasks {
		status := "Pending"
		if t.Completed {
			status = "Completed"
		}
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		row := []string{
			t.Title,
			t.Description,
			t.Category,
			t.Priority,
			status,
			due,
			t.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
