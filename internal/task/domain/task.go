package domain

import "time"

// Category groups a task into one of four fixed areas
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryHealth   Category = "Health"
	CategoryStudy    Category = "Study"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryHealth, CategoryStudy}

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every valid priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Status represents the current state of a task
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Statuses lists every valid status.
var Statuses = []Status{StatusPending, StatusCompleted}

// Task represents a single to-do item owned by the task store.
// CompletedAt is set exactly when Status transitions to completed and
// cleared again when it reverts to pending.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"due_date" gorm:"index"`
	Category    Category   `json:"category" gorm:"default:Personal"`
	Priority    Priority   `json:"priority" gorm:"default:Medium"`
	Status      Status     `json:"status" gorm:"default:pending"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ParseCategory validates a raw category value
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// ParsePriority validates a raw priority value
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if s == string(p) {
			return p, nil
		}
	}
	return "", ErrInvalidPriority
}

// ParseStatus validates a raw status value
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if s == string(st) {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}
