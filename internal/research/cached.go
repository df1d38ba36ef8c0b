package research

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/pensionunlock/policypilot/internal/models"
)

// CachedResearcher checks a MetricsStore before delegating to the next
// researcher, and writes resolved metrics back on a miss. Layers stack:
// memory cache in front of the Postgres repository in front of the
// fact-sheet client.
type CachedResearcher struct {
	store MetricsStore
	next  FundResearcher
}

// NewCachedResearcher layers store in front of next.
func NewCachedResearcher(store MetricsStore, next FundResearcher) *CachedResearcher {
	return &CachedResearcher{store: store, next: next}
}

// Lookup serves from the store when possible. Store failures are logged and
// treated as misses; the store is an optimization, not a source of truth.
func (c *CachedResearcher) Lookup(ctx context.Context, id models.ISIN) (*models.FundMetrics, error) {
	cached, err := c.store.Get(ctx, id)
	if err != nil {
		log.Warnf("metrics store get failed for %s: %v", id, err)
	} else if cached != nil {
		return cached, nil
	}

	metrics, err := c.next.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	if putErr := c.store.Put(ctx, metrics); putErr != nil {
		log.Warnf("metrics store put failed for %s: %v", id, putErr)
	}
	return metrics, nil
}
