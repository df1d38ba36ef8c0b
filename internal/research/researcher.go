// Package research defines the fund research collaborator boundary and the
// concurrency around it. Implementations look up observed metrics for an
// identifier; they must never fabricate values. A fund whose data cannot be
// found is reported as unresolved, not guessed.
package research

import (
	"context"
	"errors"

	"github.com/pensionunlock/policypilot/internal/models"
)

// ErrUnresolved indicates no metrics could be found for an identifier.
// Unresolved identifiers are partial failures: recorded and reported, never
// aborting the pipeline.
var ErrUnresolved = errors.New("fund could not be resolved")

// FundResearcher looks up observed metrics for a fund identifier.
// Lookup returns ErrUnresolved when the fund cannot be found. Any other
// error is a transport failure; callers treat it as unresolved too.
type FundResearcher interface {
	Lookup(ctx context.Context, id models.ISIN) (*models.FundMetrics, error)
}

// MetricsStore is a cache layer in front of a researcher. Both the in-memory
// TTL cache and the Postgres repository satisfy it.
type MetricsStore interface {
	Get(ctx context.Context, id models.ISIN) (*models.FundMetrics, error)
	Put(ctx context.Context, m *models.FundMetrics) error
}
