package usecase

import (
	"time"

	"tasktracker-backend/internal/task/analytics"
	"tasktracker-backend/internal/task/calendar"
	"tasktracker-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task
	CreateTask(req TaskCreateRequest) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID
	GetTaskByID(taskID string) (*domain.Task, error)

	// ListTasks retrieves tasks matching the filter in engine order
	ListTasks(f domain.Filter) ([]domain.Task, error)

	// UpdateTask updates an existing task (full-field update)
	UpdateTask(taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// UpdateTaskStatus is a status-only update that manages the
	// completed_at transition
	UpdateTaskStatus(taskID string, status string) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(taskID string) error

	// Summary aggregates the full (unfiltered) task collection
	Summary() (analytics.Summary, error)

	// Trends returns the weekly created/completed series ending at the
	// week containing ref
	Trends(windowWeeks int, ref time.Time) ([]analytics.WeekPoint, error)

	// MonthView buckets the full collection into ref's month grid
	MonthView(ref, today time.Time) ([]calendar.DayBucket, error)

	// WeekView buckets the full collection into ref's week
	WeekView(ref, today time.Time) ([]calendar.DayBucket, error)
}

// TaskCreateRequest carries the fields for creating a task.
type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Category    *string `json:"category,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}
