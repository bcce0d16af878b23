// Package handler provides the HTTP handlers for the analytics feature.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/analytics/usecase"
	"task_backend/internal/feature/tasks/domain/entity"
	jwtmw "task_backend/internal/platform/jwt"
)

// AnalyticsUsecase defines the read-only operations the handler depends on.
type AnalyticsUsecase interface {
	// Stats derives the statistics snapshot for the given window.
	Stats(ctx context.Context, userID uint, w usecase.Window) (usecase.Snapshot, error)
	// Tasks returns the unfiltered task set for exports.
	Tasks(ctx context.Context, userID uint) ([]entity.Task, error)
}

// AnalyticsHandler handles HTTP requests for statistics and exports.
type AnalyticsHandler struct {
	analytics AnalyticsUsecase
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance.
func NewAnalyticsHandler(analytics AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func caller(c *gin.Context) (uint, bool) {
	v, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Stats handles GET /api/analytics?range=week|month|year|all.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	window, err := usecase.ParseWindow(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.analytics.Stats(c.Request.Context(), userID, window)
	if err != nil {
		slog.Error("stats computation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing statistics"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Export handles GET /api/analytics/export?format=json|csv with the full
// task set as an attachment.
func (h *AnalyticsHandler) Export(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid export format"})
		return
	}

	tasks, err := h.analytics.Tasks(c.Request.Context(), userID)
	if err != nil {
		slog.Error("export failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error exporting tasks"})
		return
	}

	filename := fmt.Sprintf("tasks-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "csv":
		data, err := usecase.ExportCSV(tasks)
		if err != nil {
			slog.Error("csv export failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error exporting tasks"})
			return
		}
		c.Data(http.StatusOK, "text/csv", data)
	default:
		data, err := usecase.ExportJSON(tasks)
		if err != nil {
			slog.Error("json export failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error exporting tasks"})
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	}
}
