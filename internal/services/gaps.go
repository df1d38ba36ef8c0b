package services

import (
	"context"
	"fmt"

	"github.com/pensionunlock/policypilot/internal/models"
)

// FindGaps reports every slot left without a winner. Winners must be
// aligned with the mix slots by position; a nil winner or a winner without
// a fund marks that slot as a gap.
func FindGaps(ctx context.Context, mix models.TargetMix, winners []models.SlotWinner) []models.GapWarning {
	var gaps []models.GapWarning
	for i, slot := range mix.Slots {
		if i < len(winners) && winners[i].Fund != nil {
			continue
		}
		gap := models.GapWarning{
			Slot:    slot.Name,
			Message: fmt.Sprintf("You are missing a %s: no eligible fund in your list covers %s.", slot.Name, slot.Class),
		}
		gaps = append(gaps, gap)
		AddWarning(ctx, models.Warning{Code: models.WarnPortfolioGap, Message: gap.Message})
	}
	return gaps
}
