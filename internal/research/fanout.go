package research

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pensionunlock/policypilot/internal/models"
)

// DefaultLookupLimit bounds concurrent lookups against the research backend.
const DefaultLookupLimit = 4

// ResearchAll resolves every identifier concurrently and fans results back in
// first-seen order, so that downstream tie-breaks stay deterministic no
// matter which lookup finishes first. Lookups that fail, time out, or are
// cancelled mark their identifier unresolved; the pipeline proceeds with
// whatever resolved.
func ResearchAll(ctx context.Context, r FundResearcher, ids []models.ISIN, limit int) (resolved []*models.FundMetrics, unresolved []models.ISIN) {
	if limit <= 0 {
		limit = DefaultLookupLimit
	}

	results := make([]*models.FundMetrics, len(ids))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, id := range ids {
		g.Go(func() error {
			metrics, err := r.Lookup(ctx, id)
			if err != nil {
				switch {
				case errors.Is(err, ErrUnresolved):
					log.Infof("research: %s unresolved", id)
				case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
					log.Warnf("research: lookup for %s cancelled: %v", id, err)
				default:
					log.Warnf("research: lookup for %s failed: %v", id, err)
				}
				return nil
			}
			results[i] = metrics
			return nil
		})
	}
	// Workers always return nil; Wait only synchronizes the fan-in.
	_ = g.Wait()

	for i, id := range ids {
		if results[i] != nil {
			resolved = append(resolved, results[i])
		} else {
			unresolved = append(unresolved, id)
		}
	}
	return resolved, unresolved
}
