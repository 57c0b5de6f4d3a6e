package repository

import "tasktracker-backend/internal/task/domain"

// TaskRepository defines the interface for task data access. It is the
// persistence collaborator the engine works against; all query,
// bucketing and analytics logic operates on the snapshots it returns.
type TaskRepository interface {
	// Create persists a new task
	Create(task *domain.Task) error

	// FindByID returns the task with the given id, or
	// domain.ErrTaskNotFound if the id is unknown
	FindByID(id string) (*domain.Task, error)

	// List returns every task matching the filter; absent/"any" fields
	// mean no constraint
	List(f domain.Filter) ([]domain.Task, error)

	// Update persists changes to an existing task
	Update(task *domain.Task) error

	// Delete removes a task by id, returning domain.ErrTaskNotFound if
	// the id is unknown
	Delete(id string) error
}
