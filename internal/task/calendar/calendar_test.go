package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker-backend/internal/task/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dueTask(id string, due time.Time) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     "task " + id,
		DueDate:   due,
		Category:  domain.CategoryPersonal,
		Priority:  domain.PriorityMedium,
		Status:    domain.StatusPending,
		CreatedAt: due.AddDate(0, 0, -1),
	}
}

func TestMonthViewSpansCompleteWeeks(t *testing.T) {
	refs := []time.Time{
		date(2025, time.February, 10), // Feb 2025 starts on a Saturday
		date(2025, time.March, 1),
		date(2025, time.June, 30),
		date(2024, time.February, 29), // leap month
		date(2025, time.December, 25), // year boundary
	}

	for _, ref := range refs {
		t.Run(ref.Format("2006-01"), func(t *testing.T) {
			buckets := MonthView(nil, ref, ref)

			require.NotEmpty(t, buckets)
			assert.Zero(t, len(buckets)%7, "bucket count must be a multiple of 7")
			assert.Equal(t, time.Sunday, buckets[0].Date.Weekday())
			assert.Equal(t, time.Saturday, buckets[len(buckets)-1].Date.Weekday())

			// Contiguous range, no gaps or duplicates.
			for i := 1; i < len(buckets); i++ {
				assert.Equal(t, buckets[i-1].Date.AddDate(0, 0, 1), buckets[i].Date)
			}

			// Every day of the reference month is present and flagged.
			inMonth := 0
			for _, b := range buckets {
				if b.InCurrentMonth {
					inMonth++
					assert.Equal(t, ref.Month(), b.Date.Month())
				}
			}
			assert.Equal(t, daysIn(ref.Year(), ref.Month(), time.UTC), inMonth)
		})
	}
}

func TestMonthViewBucketsTasksByDueDate(t *testing.T) {
	ref := date(2025, time.March, 15)
	tasks := []domain.Task{
		dueTask("a", date(2025, time.March, 10)),
		dueTask("b", date(2025, time.March, 10).Add(14*time.Hour)), // time of day ignored
		dueTask("c", date(2025, time.April, 10)),                   // outside the grid
	}

	buckets := MonthView(tasks, ref, ref)

	var day10 *DayBucket
	for i := range buckets {
		if SameDay(buckets[i].Date, date(2025, time.March, 10)) {
			day10 = &buckets[i]
		}
	}
	require.NotNil(t, day10)
	assert.Len(t, day10.Tasks, 2)
	assert.Zero(t, day10.OverflowCount)

	for _, b := range buckets {
		for _, task := range b.Tasks {
			assert.NotEqual(t, "c", task.ID, "April task must not appear in the March grid")
		}
	}
}

func TestMonthViewCapsVisibleTasks(t *testing.T) {
	ref := date(2025, time.March, 15)
	day := date(2025, time.March, 12)

	var tasks []domain.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, dueTask(fmt.Sprintf("t%d", i), day))
	}

	buckets := MonthView(tasks, ref, ref)
	for _, b := range buckets {
		if SameDay(b.Date, day) {
			assert.Len(t, b.Tasks, MaxVisibleTasks)
			assert.Equal(t, 3, b.OverflowCount)
			return
		}
	}
	t.Fatal("day bucket not found")
}

func TestMonthViewMarksToday(t *testing.T) {
	ref := date(2025, time.March, 15)
	today := date(2025, time.March, 4)

	buckets := MonthView(nil, ref, today)

	todays := 0
	for _, b := range buckets {
		if b.IsToday {
			todays++
			assert.True(t, SameDay(b.Date, today))
		}
	}
	assert.Equal(t, 1, todays)
}

func TestWeekViewReturnsSevenDaysAroundRef(t *testing.T) {
	ref := date(2025, time.March, 12) // a Wednesday

	buckets := WeekView(nil, ref, ref)

	require.Len(t, buckets, 7)
	assert.Equal(t, time.Sunday, buckets[0].Date.Weekday())
	assert.Equal(t, time.Saturday, buckets[6].Date.Weekday())

	containsRef := false
	for _, b := range buckets {
		if SameDay(b.Date, ref) {
			containsRef = true
		}
	}
	assert.True(t, containsRef, "week must contain the reference date")
}

func TestWeekViewDoesNotCapTasks(t *testing.T) {
	ref := date(2025, time.March, 12)

	var tasks []domain.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, dueTask(fmt.Sprintf("t%d", i), ref))
	}

	buckets := WeekView(tasks, ref, ref)
	for _, b := range buckets {
		if SameDay(b.Date, ref) {
			assert.Len(t, b.Tasks, 5)
			assert.Zero(t, b.OverflowCount)
			return
		}
	}
	t.Fatal("reference day bucket not found")
}

func TestMonthNavigationClampsDayOfMonth(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		next bool
		want time.Time
	}{
		{"jan 31 to feb 28", date(2025, time.January, 31), true, date(2025, time.February, 28)},
		{"jan 31 to feb 29 leap", date(2024, time.January, 31), true, date(2024, time.February, 29)},
		{"feb 28 to mar 28", date(2025, time.February, 28), true, date(2025, time.March, 28)},
		{"mar 31 back to feb 28", date(2025, time.March, 31), false, date(2025, time.February, 28)},
		{"dec to jan rollover", date(2025, time.December, 15), true, date(2026, time.January, 15)},
		{"jan back to dec rollover", date(2026, time.January, 15), false, date(2025, time.December, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrevMonth(tt.from)
			if tt.next {
				got = NextMonth(tt.from)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekNavigationShiftsSevenDays(t *testing.T) {
	ref := date(2025, time.March, 12)
	assert.Equal(t, date(2025, time.March, 19), NextWeek(ref))
	assert.Equal(t, date(2025, time.March, 5), PrevWeek(ref))
}

func TestStartOfWeek(t *testing.T) {
	// March 12 2025 is a Wednesday; its week starts Sunday March 9.
	assert.Equal(t, date(2025, time.March, 9), StartOfWeek(date(2025, time.March, 12)))
	// A Sunday is its own week start.
	assert.Equal(t, date(2025, time.March, 9), StartOfWeek(date(2025, time.March, 9)))
}
