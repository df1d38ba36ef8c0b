package research

import (
	"context"
	"sync"

	"github.com/pensionunlock/policypilot/internal/models"
)

// SessionResearcher memoizes lookups for the lifetime of one request, so an
// identifier is never re-queried within a session. Unresolved results are
// memoized too.
type SessionResearcher struct {
	next FundResearcher

	mu      sync.Mutex
	results map[models.ISIN]sessionEntry
}

type sessionEntry struct {
	metrics *models.FundMetrics
	err     error
}

// NewSessionResearcher wraps next with per-session memoization.
func NewSessionResearcher(next FundResearcher) *SessionResearcher {
	return &SessionResearcher{
		next:    next,
		results: make(map[models.ISIN]sessionEntry),
	}
}

// Lookup returns the memoized result when present, otherwise delegates.
func (s *SessionResearcher) Lookup(ctx context.Context, id models.ISIN) (*models.FundMetrics, error) {
	s.mu.Lock()
	if entry, ok := s.results[id]; ok {
		s.mu.Unlock()
		return entry.metrics, entry.err
	}
	s.mu.Unlock()

	metrics, err := s.next.Lookup(ctx, id)

	// Do not memoize cancellations: a later retry within the session may
	// still succeed.
	if ctx.Err() != nil {
		return metrics, err
	}

	s.mu.Lock()
	s.results[id] = sessionEntry{metrics: metrics, err: err}
	s.mu.Unlock()
	return metrics, err
}
