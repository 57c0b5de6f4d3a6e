package domain

import "errors"

var (
	// ErrTaskNotFound is returned when a task id is unknown to the store
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidCategory is returned for category values outside the closed enumeration
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidPriority is returned for priority values outside the closed enumeration
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidStatus is returned for status values outside the closed enumeration
	ErrInvalidStatus = errors.New("invalid status")

	// ErrEmptyTitle is returned when a task is created or updated without a title
	ErrEmptyTitle = errors.New("title must not be empty")
)
