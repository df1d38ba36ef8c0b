package research

import (
	"context"

	"github.com/pensionunlock/policypilot/internal/models"
)

// StaticResearcher serves lookups from a fixed in-memory dataset. Used in
// tests and in demo mode when no fact-sheet API is configured.
type StaticResearcher struct {
	funds map[models.ISIN]models.FundMetrics
}

// NewStaticResearcher builds a researcher over the given dataset.
func NewStaticResearcher(funds []models.FundMetrics) *StaticResearcher {
	byISIN := make(map[models.ISIN]models.FundMetrics, len(funds))
	for _, f := range funds {
		byISIN[f.ISIN] = f
	}
	return &StaticResearcher{funds: byISIN}
}

// Lookup returns the dataset entry or ErrUnresolved.
func (s *StaticResearcher) Lookup(ctx context.Context, id models.ISIN) (*models.FundMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, ok := s.funds[id]
	if !ok {
		return nil, ErrUnresolved
	}
	out := f
	return &out, nil
}
