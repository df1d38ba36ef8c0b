package services

import (
	"context"
	"fmt"
	"math"

	"github.com/pensionunlock/policypilot/internal/models"
)

// scoreEpsilon bounds float comparison when deciding ties.
const scoreEpsilon = 1e-9

// SelectWinner picks the best candidate for a slot, or nil when the
// candidate set is empty. Candidates must arrive in first-seen extraction
// order; that order is the final tie-break, which keeps selection fully
// deterministic across runs.
//
// Equity-type slots score by Sharpe-like ratio (return over volatility),
// highest wins. Defensive-type slots score by volatility, lowest wins.
// Ties within epsilon fall to the lowest fee ratio, then to first-seen
// order.
func SelectWinner(ctx context.Context, slot models.Slot, candidates []models.ClassifiedFund) *models.SlotWinner {
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	rationale := primaryRule(slot)
	for _, c := range candidates[1:] {
		diff := score(slot, c) - score(slot, best)
		switch {
		case diff > scoreEpsilon:
			best = c
			rationale = primaryRule(slot)
		case math.Abs(diff) <= scoreEpsilon:
			// Scores tied: lowest fee wins; a fee tie keeps the
			// earlier-seen fund
			if best.FeeRatio-c.FeeRatio > scoreEpsilon {
				best = c
				rationale = models.RuleLowestFees
				AddWarning(ctx, models.Warning{
					Code:    models.WarnTieBreakApplied,
					Message: fmt.Sprintf("%s slot: %s won on fees over a tied score", slot.Name, c.ISIN),
				})
			}
		}
	}

	winner := best
	return &models.SlotWinner{
		Slot:      slot.Name,
		Fund:      &winner,
		Rationale: rationale,
	}
}

func primaryRule(slot models.Slot) models.SelectionRule {
	if slot.Class == models.AssetDefensive {
		return models.RuleLowestVolatility
	}
	return models.RuleHighestSharpe
}

// score maps a fund onto the slot's scale where higher is always better.
func score(slot models.Slot, f models.ClassifiedFund) float64 {
	if slot.Class == models.AssetDefensive {
		return -f.Volatility
	}
	return f.OneYearReturn / math.Max(f.Volatility, scoreEpsilon)
}
