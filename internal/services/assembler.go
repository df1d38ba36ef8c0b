package services

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/pensionunlock/policypilot/internal/models"
)

// mixSumEpsilon tolerates float noise when validating a mix table.
const mixSumEpsilon = 1e-9

// AssemblePortfolio combines the target mix with the slot winners into the
// final allocation record. Pure combination: it copies target percentages
// onto winners and carries rejections, gaps and the eligible set through
// for reporting. Fails only when the mix table itself is malformed.
func AssemblePortfolio(
	profile models.RiskProfile,
	horizonYears int,
	mix models.TargetMix,
	winners []models.SlotWinner,
	gaps []models.GapWarning,
	rejections []models.RejectionReason,
	eligible []models.ClassifiedFund,
	unresolved []models.ISIN,
) (*models.PortfolioResult, error) {
	var sum float64
	for _, slot := range mix.Slots {
		sum += slot.Percent
	}
	if math.Abs(sum-100) > mixSumEpsilon {
		return nil, fmt.Errorf("%w: %s mix sums to %.2f", ErrIncompleteMix, mix.Strategy, sum)
	}

	out := make([]models.SlotWinner, 0, len(winners))
	for i, w := range winners {
		if i < len(mix.Slots) {
			w.Percent = mix.Slots[i].Percent
		}
		out = append(out, w)
	}

	return &models.PortfolioResult{
		RequestID:    uuid.NewString(),
		Profile:      profile,
		Strategy:     mix.Strategy,
		HorizonYears: horizonYears,
		Winners:      out,
		Gaps:         gaps,
		Rejections:   rejections,
		Eligible:     eligible,
		Unresolved:   unresolved,
	}, nil
}
