package qkart

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet interval a Searcher waits for after the last
// keystroke before dispatching.
const DefaultDebounce = 500 * time.Millisecond

// Searcher debounces free-text search input: each Type call cancels any
// pending dispatch and re-arms the timer, so only the last query within a
// quiet window is dispatched. Superseded queries are dropped, not merged.
type Searcher struct {
	interval time.Duration
	dispatch func(query string)

	mu    sync.Mutex
	timer *time.Timer
}

// NewSearcher builds a Searcher that calls dispatch once input has been quiet
// for the given interval. A non-positive interval uses DefaultDebounce.
// dispatch runs on the timer's goroutine.
func NewSearcher(interval time.Duration, dispatch func(query string)) *Searcher {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Searcher{interval: interval, dispatch: dispatch}
}

// Type records a keystroke's resulting query. Any pending dispatch is
// cancelled and rescheduled. An empty query is a valid search.
func (s *Searcher) Type(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		s.dispatch(query)
	})
}

// Stop cancels any pending dispatch. Safe to call repeatedly.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
