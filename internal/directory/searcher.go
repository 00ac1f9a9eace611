package directory

import (
	"context"
	"sync"
	"time"

	"github.com/rgayashan/FindAMechanic/internal/model"
)

// Searcher debounces keystroke-driven searches and drops superseded
// results. Each Search call cancels the previous in-flight one; only the
// newest search's result is ever delivered.
type Searcher struct {
	svc      lister
	pageSize int
	debounce time.Duration
	deliver  func(search string, mechanics []model.Mechanic, err error)

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewSearcher creates a searcher. deliver is called at most once per
// Search, and never for a search that has been superseded.
func NewSearcher(svc lister, pageSize int, debounce time.Duration, deliver func(search string, mechanics []model.Mechanic, err error)) *Searcher {
	return &Searcher{
		svc:      svc,
		pageSize: pageSize,
		debounce: debounce,
		deliver:  deliver,
	}
}

// Search schedules a page-1 fetch for the given term after the debounce
// window. A newer call supersedes this one: its timer is stopped if still
// pending, or its result dropped on arrival if already in flight.
func (s *Searcher) Search(term string) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	go func() {
		timer := time.NewTimer(s.debounce)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		mechanics, err := s.svc.ListMechanics(ctx, 1, s.pageSize, term)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// Superseded while in flight.
			return
		}
		s.deliver(term, mechanics, err)
	}()
}

// Close cancels any pending or in-flight search.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
}
