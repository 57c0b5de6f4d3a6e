package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"tasktracker-backend/internal/task/analytics"
	"tasktracker-backend/internal/task/controller"
	"tasktracker-backend/internal/task/domain"
	"tasktracker-backend/internal/task/usecase"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
	query       *controller.QueryController

	mu         sync.Mutex
	lastNotice string
}

// NewTaskHandler creates a new TaskHandler. The query controller is
// optional; when present its error notifications are collected and
// exposed on the live snapshot endpoint.
func NewTaskHandler(taskUsecase usecase.TaskUsecase, qc *controller.QueryController) *TaskHandler {
	h := &TaskHandler{
		taskUsecase: taskUsecase,
		query:       qc,
	}
	if qc != nil {
		qc.SetOnError(func(err error) {
			h.mu.Lock()
			h.lastNotice = "Failed to fetch tasks: " + err.Error()
			h.mu.Unlock()
		})
		qc.SetOnUpdate(func([]domain.Task) {
			h.mu.Lock()
			h.lastNotice = ""
			h.mu.Unlock()
		})
	}
	return h
}

// GetTasks returns all tasks matching the filter query parameters
// GET /api/tasks?category=Work&priority=High&status=pending&search=groc
func (h *TaskHandler) GetTasks(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	tasks, err := h.taskUsecase.ListTasks(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetTaskByID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req usecase.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(c.Param("id"), updates)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus is a convenience endpoint to just update status
// PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTaskStatus(c.Param("id"), req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskUsecase.DeleteTask(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// GetSummary returns aggregate statistics over the full collection
// GET /api/analytics/summary
func (h *TaskHandler) GetSummary(c *gin.Context) {
	summary, err := h.taskUsecase.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetTrends returns the weekly created/completed series
// GET /api/analytics/trends?weeks=8
func (h *TaskHandler) GetTrends(c *gin.Context) {
	weeks, _ := strconv.Atoi(c.DefaultQuery("weeks", strconv.Itoa(analytics.DefaultTrendWeeks)))

	trends, err := h.taskUsecase.Trends(weeks, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// GetMonthView returns the month calendar grid around the given date
// GET /api/calendar/month?date=2025-03-15
func (h *TaskHandler) GetMonthView(c *gin.Context) {
	ref, ok := h.parseDate(c)
	if !ok {
		return
	}

	buckets, err := h.taskUsecase.MonthView(ref, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": buckets})
}

// GetWeekView returns the seven day buckets of the week containing the
// given date
// GET /api/calendar/week?date=2025-03-15
func (h *TaskHandler) GetWeekView(c *gin.Context) {
	ref, ok := h.parseDate(c)
	if !ok {
		return
	}

	buckets, err := h.taskUsecase.WeekView(ref, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": buckets})
}

// SetQueryFilter notifies the query controller of a filter change; the
// actual store query is debounced
// PUT /api/query/filter
func (h *TaskHandler) SetQueryFilter(c *gin.Context) {
	if h.query == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Live query disabled"})
		return
	}

	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	h.query.SetFilter(filter)
	c.JSON(http.StatusAccepted, gin.H{"message": "Filter accepted"})
}

// GetQuerySnapshot returns the controller's last good task collection
// GET /api/query/snapshot
func (h *TaskHandler) GetQuerySnapshot(c *gin.Context) {
	if h.query == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Live query disabled"})
		return
	}

	h.mu.Lock()
	notice := h.lastNotice
	h.mu.Unlock()

	resp := gin.H{"tasks": h.query.Snapshot()}
	if notice != "" {
		resp["notice"] = notice
	}
	c.JSON(http.StatusOK, resp)
}

// parseFilter builds a validated filter from the query parameters,
// writing a 400 response itself when a value is outside the enums.
func (h *TaskHandler) parseFilter(c *gin.Context) (domain.Filter, bool) {
	filter, err := domain.NewFilter(
		c.Query("category"),
		c.Query("priority"),
		c.Query("status"),
		c.Query("search"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.Filter{}, false
	}
	return filter, true
}

// parseDate reads the date query parameter, defaulting to today.
func (h *TaskHandler) parseDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	ref, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return ref, true
}

func (h *TaskHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
