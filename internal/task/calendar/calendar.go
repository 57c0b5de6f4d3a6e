// Package calendar buckets tasks into calendar days for the month and
// week views and provides the month/week navigation arithmetic. Weeks
// run Sunday through Saturday. All functions take the current date from
// the caller, so there is no wall-clock dependency inside the package.
package calendar

import (
	"time"

	"tasktracker-backend/internal/task/domain"
	"tasktracker-backend/internal/task/query"
)

// MaxVisibleTasks caps how many tasks a month cell lists directly; the
// remainder is reported through OverflowCount.
const MaxVisibleTasks = 2

// DayBucket holds the tasks due on a single calendar date.
type DayBucket struct {
	Date           time.Time     `json:"date"`
	InCurrentMonth bool          `json:"in_current_month"`
	IsToday        bool          `json:"is_today"`
	Tasks          []domain.Task `json:"tasks"`
	OverflowCount  int           `json:"overflow_count"`
}

// MonthView partitions tasks into day buckets covering ref's month,
// padded to complete Sunday-Saturday weeks: the range starts on the
// Sunday on or before the first of the month and ends on the Saturday
// on or after its last day, so the result length is always a multiple
// of seven. Each bucket lists at most MaxVisibleTasks tasks in engine
// order plus an overflow count.
func MonthView(tasks []domain.Task, ref, today time.Time) []DayBucket {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	start := StartOfWeek(monthStart)
	end := StartOfWeek(monthEnd).AddDate(0, 0, 6)

	var buckets []DayBucket
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		b := bucketFor(tasks, day, today)
		b.InCurrentMonth = day.Month() == ref.Month() && day.Year() == ref.Year()
		if n := len(b.Tasks); n > MaxVisibleTasks {
			b.OverflowCount = n - MaxVisibleTasks
			b.Tasks = b.Tasks[:MaxVisibleTasks]
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// WeekView returns exactly seven day buckets, Sunday through Saturday
// of the week containing ref, each carrying its full ordered task list.
func WeekView(tasks []domain.Task, ref, today time.Time) []DayBucket {
	start := StartOfWeek(ref)

	buckets := make([]DayBucket, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		b := bucketFor(tasks, day, today)
		b.InCurrentMonth = day.Month() == ref.Month() && day.Year() == ref.Year()
		buckets = append(buckets, b)
	}
	return buckets
}

// NextMonth advances ref by exactly one calendar month. When the target
// month is shorter the day of month is clamped to its last valid day,
// never rolling into the month after.
func NextMonth(ref time.Time) time.Time {
	return addMonths(ref, 1)
}

// PrevMonth moves ref back by exactly one calendar month, clamping the
// day of month the same way as NextMonth.
func PrevMonth(ref time.Time) time.Time {
	return addMonths(ref, -1)
}

// NextWeek shifts ref forward by exactly seven days.
func NextWeek(ref time.Time) time.Time {
	return ref.AddDate(0, 0, 7)
}

// PrevWeek shifts ref back by exactly seven days.
func PrevWeek(ref time.Time) time.Time {
	return ref.AddDate(0, 0, -7)
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	t = t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay compares two timestamps by calendar date only.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func bucketFor(tasks []domain.Task, day, today time.Time) DayBucket {
	due := make([]domain.Task, 0)
	for _, t := range tasks {
		if SameDay(t.DueDate, day) {
			due = append(due, t)
		}
	}
	query.Sort(due)

	return DayBucket{
		Date:    day,
		IsToday: SameDay(day, today),
		Tasks:   due,
	}
}

func addMonths(ref time.Time, n int) time.Time {
	// AddDate on day 1 is safe from normalization; clamp the day after.
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, n, 0)

	day := ref.Day()
	if last := daysIn(first.Year(), first.Month(), ref.Location()); day > last {
		day = last
	}

	hour, min, sec := ref.Clock()
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, ref.Nanosecond(), ref.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
