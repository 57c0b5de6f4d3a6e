// Package analytics reduces a task snapshot into summary statistics and
// a rolling weekly trend series. Both entry points are pure functions;
// empty input produces zero-valued output, never an error.
package analytics

import (
	"fmt"
	"math"
	"time"

	"tasktracker-backend/internal/task/calendar"
	"tasktracker-backend/internal/task/domain"
)

// DefaultTrendWeeks is the trend window used when the caller does not
// ask for a specific number of weeks.
const DefaultTrendWeeks = 8

// CategoryCount holds per-category totals.
type CategoryCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// PriorityCount holds per-priority totals.
type PriorityCount struct {
	Total int `json:"total"`
}

// Summary aggregates a task collection. ByCategory always carries all
// four categories and ByPriority all three priorities, with zero counts
// where no tasks exist, so downstream charts keep a stable shape.
type Summary struct {
	TotalTasks     int                               `json:"total_tasks"`
	CompletedTasks int                               `json:"completed_tasks"`
	PendingTasks   int                               `json:"pending_tasks"`
	CompletionRate int                               `json:"completion_rate"`
	ByCategory     map[domain.Category]CategoryCount `json:"by_category"`
	ByPriority     map[domain.Priority]PriorityCount `json:"by_priority"`
}

// WeekPoint is one entry of the weekly trend series.
type WeekPoint struct {
	Week      string `json:"week"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// Summarize reduces tasks into a Summary. The completion rate is the
// completed share rounded to the nearest integer percent, and zero when
// there are no tasks at all.
func Summarize(tasks []domain.Task) Summary {
	s := Summary{
		ByCategory: make(map[domain.Category]CategoryCount, len(domain.Categories)),
		ByPriority: make(map[domain.Priority]PriorityCount, len(domain.Priorities)),
	}
	for _, c := range domain.Categories {
		s.ByCategory[c] = CategoryCount{}
	}
	for _, p := range domain.Priorities {
		s.ByPriority[p] = PriorityCount{}
	}

	for _, t := range tasks {
		s.TotalTasks++
		completed := t.Status == domain.StatusCompleted
		if completed {
			s.CompletedTasks++
		}

		cc := s.ByCategory[t.Category]
		cc.Total++
		if completed {
			cc.Completed++
		}
		s.ByCategory[t.Category] = cc

		pc := s.ByPriority[t.Priority]
		pc.Total++
		s.ByPriority[t.Priority] = pc
	}

	s.PendingTasks = s.TotalTasks - s.CompletedTasks
	if s.TotalTasks > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedTasks) / float64(s.TotalTasks) * 100))
	}
	return s
}

// Trends produces exactly windowWeeks weekly points, oldest first, the
// last one being the week containing ref. Created counts tasks whose
// created_at falls in the week; Completed counts tasks whose
// completed_at does, so a task contributes to at most one week's
// completed count. Weeks with no activity still appear zero-valued.
func Trends(tasks []domain.Task, windowWeeks int, ref time.Time) []WeekPoint {
	if windowWeeks <= 0 {
		windowWeeks = DefaultTrendWeeks
	}

	lastWeek := calendar.StartOfWeek(ref)
	firstWeek := lastWeek.AddDate(0, 0, -7*(windowWeeks-1))

	points := make([]WeekPoint, windowWeeks)
	for i := range points {
		points[i].Week = weekLabel(firstWeek.AddDate(0, 0, 7*i))
	}

	for _, t := range tasks {
		if i, ok := weekIndex(t.CreatedAt, firstWeek, windowWeeks); ok {
			points[i].Created++
		}
		if t.CompletedAt != nil {
			if i, ok := weekIndex(*t.CompletedAt, firstWeek, windowWeeks); ok {
				points[i].Completed++
			}
		}
	}
	return points
}

func weekIndex(ts, firstWeek time.Time, windowWeeks int) (int, bool) {
	days := int(math.Round(calendar.StartOfWeek(ts).Sub(firstWeek).Hours() / 24))
	if days < 0 {
		return 0, false
	}
	i := days / 7
	if i >= windowWeeks {
		return 0, false
	}
	return i, true
}

// weekLabel formats a week start as YYYY-Wnn with the Sunday-first week
// number, matching strftime's %U.
func weekLabel(weekStart time.Time) string {
	yday := weekStart.YearDay() - 1
	week := (yday + 7 - int(weekStart.Weekday())) / 7
	return fmt.Sprintf("%d-W%02d", weekStart.Year(), week)
}
