package controller

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker-backend/internal/task/domain"
)

const testDebounce = 30 * time.Millisecond

type fakeStore struct {
	mu     sync.Mutex
	calls  []domain.Filter
	listFn func(call int, f domain.Filter) ([]domain.Task, error)
}

func (s *fakeStore) List(f domain.Filter) ([]domain.Task, error) {
	s.mu.Lock()
	s.calls = append(s.calls, f)
	call := len(s.calls)
	s.mu.Unlock()
	return s.listFn(call, f)
}

func (s *fakeStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *fakeStore) lastCall() domain.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func taskNamed(id string) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     "task " + id,
		DueDate:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Category:  domain.CategoryPersonal,
		Priority:  domain.PriorityMedium,
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func waitUpdate(t *testing.T, updates <-chan []domain.Task) []domain.Task {
	t.Helper()
	select {
	case tasks := <-updates:
		return tasks
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot update")
		return nil
	}
}

func TestRapidFilterChangesIssueOneQuery(t *testing.T) {
	store := &fakeStore{
		listFn: func(_ int, f domain.Filter) ([]domain.Task, error) {
			return []domain.Task{taskNamed("a")}, nil
		},
	}

	c := NewQueryController(store, testDebounce)
	updates := make(chan []domain.Task, 4)
	c.SetOnUpdate(func(tasks []domain.Task) { updates <- tasks })
	c.Start()
	defer c.Stop()

	first, err := domain.NewFilter("Work", "", "", "")
	require.NoError(t, err)
	second, err := domain.NewFilter("Health", "High", "", "")
	require.NoError(t, err)

	// Both changes land inside one settling period.
	c.SetFilter(first)
	c.SetFilter(second)

	waitUpdate(t, updates)

	assert.Equal(t, 1, store.callCount(), "superseded filter state must not be queried")
	assert.Equal(t, second, store.lastCall())
}

func TestSettledChangesEachIssueQuery(t *testing.T) {
	store := &fakeStore{
		listFn: func(_ int, f domain.Filter) ([]domain.Task, error) {
			return []domain.Task{taskNamed("a")}, nil
		},
	}

	c := NewQueryController(store, testDebounce)
	updates := make(chan []domain.Task, 4)
	c.SetOnUpdate(func(tasks []domain.Task) { updates <- tasks })
	c.Start()
	defer c.Stop()

	c.SetFilter(domain.MatchAll())
	waitUpdate(t, updates)

	f, err := domain.NewFilter("Study", "", "", "")
	require.NoError(t, err)
	c.SetFilter(f)
	waitUpdate(t, updates)

	assert.Equal(t, 2, store.callCount())
}

func TestLastIssuedWins(t *testing.T) {
	release := make(chan struct{})
	store := &fakeStore{
		listFn: func(call int, f domain.Filter) ([]domain.Task, error) {
			if call == 1 {
				<-release // hold the first response until after the second lands
				return []domain.Task{taskNamed("stale")}, nil
			}
			return []domain.Task{taskNamed("fresh")}, nil
		},
	}

	c := NewQueryController(store, testDebounce)
	updates := make(chan []domain.Task, 4)
	c.SetOnUpdate(func(tasks []domain.Task) { updates <- tasks })
	c.Start()
	defer c.Stop()

	first, err := domain.NewFilter("", "", "pending", "")
	require.NoError(t, err)
	c.SetFilter(first)

	// Wait for the first fetch to be in flight.
	require.Eventually(t, func() bool { return store.callCount() == 1 },
		2*time.Second, 5*time.Millisecond)

	second, err := domain.NewFilter("", "Medium", "", "")
	require.NoError(t, err)
	c.SetFilter(second)

	tasks := waitUpdate(t, updates)
	require.Len(t, tasks, 1)
	assert.Equal(t, "fresh", tasks[0].ID)

	// Releasing the stale response must not overwrite the snapshot.
	close(release)
	time.Sleep(3 * testDebounce)

	snapshot := c.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "fresh", snapshot[0].ID)
	assert.Empty(t, updates, "stale response must not trigger an update")
}

func TestStoreFailureKeepsLastSnapshot(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &fakeStore{
		listFn: func(call int, f domain.Filter) ([]domain.Task, error) {
			if call == 1 {
				return []domain.Task{taskNamed("good")}, nil
			}
			return nil, storeErr
		},
	}

	c := NewQueryController(store, testDebounce)
	updates := make(chan []domain.Task, 4)
	failures := make(chan error, 4)
	c.SetOnUpdate(func(tasks []domain.Task) { updates <- tasks })
	c.SetOnError(func(err error) { failures <- err })
	c.Start()
	defer c.Stop()

	c.SetFilter(domain.MatchAll())
	waitUpdate(t, updates)

	f, err := domain.NewFilter("Work", "", "", "")
	require.NoError(t, err)
	c.SetFilter(f)

	select {
	case got := <-failures:
		assert.ErrorIs(t, got, storeErr)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error notification")
	}

	snapshot := c.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "good", snapshot[0].ID, "failed fetch must not clear the view")
}

func TestSnapshotStartsEmpty(t *testing.T) {
	store := &fakeStore{
		listFn: func(int, domain.Filter) ([]domain.Task, error) { return nil, nil },
	}
	c := NewQueryController(store, testDebounce)

	snapshot := c.Snapshot()
	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot)
}
