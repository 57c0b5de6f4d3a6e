// Package controller coordinates user-driven filter changes with
// debounced fetches against the task store. All mutable state (current
// filter, current snapshot) is owned by a single goroutine; superseded
// fetches are not aborted at the transport level, their responses are
// simply discarded via a monotonically increasing sequence number.
package controller

import (
	"log"
	"sync"
	"time"

	"tasktracker-backend/internal/task/domain"
	"tasktracker-backend/internal/task/query"
)

// DefaultDebounce is the quiet interval a filter change must settle for
// before a query is issued.
const DefaultDebounce = 300 * time.Millisecond

// Fetcher is the slice of the task store the controller needs.
type Fetcher interface {
	List(f domain.Filter) ([]domain.Task, error)
}

type fetchResult struct {
	seq   uint64
	tasks []domain.Task
	err   error
}

// QueryController debounces filter changes, issues at most one
// effective store query per settling period, and applies only the
// response of the most recently issued query. On store failure the last
// good snapshot is kept and the error is surfaced through OnError.
type QueryController struct {
	store    Fetcher
	debounce time.Duration

	changes chan domain.Filter
	results chan fetchResult
	stop    chan struct{}
	done    chan struct{}

	onUpdate func([]domain.Task)
	onError  func(error)

	mu       sync.RWMutex
	snapshot []domain.Task
}

// NewQueryController creates a controller around the given store. A
// non-positive debounce falls back to DefaultDebounce.
func NewQueryController(store Fetcher, debounce time.Duration) *QueryController {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &QueryController{
		store:    store,
		debounce: debounce,
		changes:  make(chan domain.Filter, 16),
		results:  make(chan fetchResult, 16),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		snapshot: []domain.Task{},
	}
}

// SetOnUpdate registers the snapshot listener. Must be called before Start.
func (c *QueryController) SetOnUpdate(fn func([]domain.Task)) {
	c.onUpdate = fn
}

// SetOnError registers the error notification listener. Must be called
// before Start.
func (c *QueryController) SetOnError(fn func(error)) {
	c.onError = fn
}

// Start begins the controller loop.
func (c *QueryController) Start() {
	go c.run()
}

// Stop shuts the controller down and waits for the loop to exit.
func (c *QueryController) Stop() {
	close(c.stop)
	<-c.done
}

// SetFilter notifies the controller of a filter change. The query is
// issued only after the debounce interval passes with no further
// changes.
func (c *QueryController) SetFilter(f domain.Filter) {
	select {
	case c.changes <- f:
	case <-c.stop:
	}
}

// Snapshot returns the last successfully fetched task collection.
func (c *QueryController) Snapshot() []domain.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Task, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}

func (c *QueryController) run() {
	defer close(c.done)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
		pending domain.Filter
		issued  uint64
	)

	for {
		select {
		case f := <-c.changes:
			pending = f
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(c.debounce)
			timerCh = timer.C

		case <-timerCh:
			timerCh = nil
			issued++
			go c.fetch(issued, pending)

		case r := <-c.results:
			if r.seq != issued {
				// Superseded by a newer query, drop it.
				continue
			}
			if r.err != nil {
				log.Printf("[QueryController] fetch failed, keeping last snapshot: %v", r.err)
				if c.onError != nil {
					c.onError(r.err)
				}
				continue
			}
			c.mu.Lock()
			c.snapshot = r.tasks
			c.mu.Unlock()
			if c.onUpdate != nil {
				c.onUpdate(r.tasks)
			}

		case <-c.stop:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (c *QueryController) fetch(seq uint64, f domain.Filter) {
	tasks, err := c.store.List(f)
	r := fetchResult{seq: seq, err: err}
	if err == nil {
		// The engine re-orders whatever the store returned so the
		// list view always sees the deterministic ordering.
		r.tasks = query.Apply(tasks, f)
	}
	select {
	case c.results <- r:
	case <-c.stop:
	}
}
