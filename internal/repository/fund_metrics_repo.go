package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pensionunlock/policypilot/internal/models"
)

// FundMetricsRepository persists researched fund metrics so that repeated
// requests for the same identifiers skip the fact-sheet API.
type FundMetricsRepository struct {
	pool *pgxpool.Pool
}

// NewFundMetricsRepository creates a new FundMetricsRepository
func NewFundMetricsRepository(pool *pgxpool.Pool) *FundMetricsRepository {
	return &FundMetricsRepository{pool: pool}
}

// Get retrieves cached metrics for an identifier. A miss is (nil, nil).
func (r *FundMetricsRepository) Get(ctx context.Context, id models.ISIN) (*models.FundMetrics, error) {
	query := `
		SELECT isin, name, category, one_year_return, volatility, fee_ratio, risk_score
		FROM fund_metrics
		WHERE isin = $1
	`
	m := &models.FundMetrics{}
	err := r.pool.QueryRow(ctx, query, string(id)).Scan(
		&m.ISIN, &m.Name, &m.Category, &m.OneYearReturn, &m.Volatility, &m.FeeRatio, &m.RiskScore,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fund metrics: %w", err)
	}
	return m, nil
}

// Put upserts metrics for a fund
func (r *FundMetricsRepository) Put(ctx context.Context, m *models.FundMetrics) error {
	query := `
		INSERT INTO fund_metrics (isin, name, category, one_year_return, volatility, fee_ratio, risk_score, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (isin) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			one_year_return = EXCLUDED.one_year_return,
			volatility = EXCLUDED.volatility,
			fee_ratio = EXCLUDED.fee_ratio,
			risk_score = EXCLUDED.risk_score,
			fetched_at = NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		string(m.ISIN), m.Name, m.Category, m.OneYearReturn, m.Volatility, m.FeeRatio, m.RiskScore,
	)
	if err != nil {
		return fmt.Errorf("failed to store fund metrics: %w", err)
	}
	return nil
}

// Delete removes cached metrics for an identifier
func (r *FundMetricsRepository) Delete(ctx context.Context, id models.ISIN) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM fund_metrics WHERE isin = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete fund metrics: %w", err)
	}
	return nil
}
