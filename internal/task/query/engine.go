// Package query implements the pure task query engine: it evaluates a
// filter against an in-memory task snapshot and returns a
// deterministically ordered result. It performs no I/O and never
// mutates its input.
package query

import (
	"sort"

	"tasktracker-backend/internal/task/domain"
)

// Apply returns the tasks matching f, ordered by due date ascending,
// ties broken by created_at ascending, then by id. Given the same
// (tasks, f) it always returns the same ordering, so re-renders of the
// same snapshot are idempotent. An empty input or zero matches yields
// an empty slice, never nil and never an error.
func Apply(tasks []domain.Task, f domain.Filter) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	Sort(out)
	return out
}

// Sort orders tasks in place using the engine ordering.
func Sort(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return less(tasks[i], tasks[j])
	})
}

func less(a, b domain.Task) bool {
	if !a.DueDate.Equal(b.DueDate) {
		return a.DueDate.Before(b.DueDate)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
