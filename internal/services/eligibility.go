package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/pensionunlock/policypilot/internal/models"
)

// MaxFeeRatio is the TER cap above which a fund is rejected, unless it is
// the sole candidate for its slot.
const MaxFeeRatio = 2.5

// maxRiskScore caps the SRRI score a profile tolerates. Funds with an
// unknown score pass; the score rule only rejects demonstrated mismatches.
var maxRiskScore = map[models.RiskProfile]int{
	models.RiskConservative: 4,
	models.RiskBalanced:     5,
	models.RiskGrowth:       6,
	models.RiskAggressive:   7,
}

// incompatibleTags lists specialty tags a profile may not hold at all.
var incompatibleTags = map[models.RiskProfile][]models.SpecialtyTag{
	models.RiskConservative: {models.TagCrypto},
	models.RiskBalanced:     {models.TagCrypto},
}

// FilterEligible applies the two rejection rules in their required order:
// the fee rule first, then per-slot sole-option reinstatement, then the
// risk-compatibility rule on the reinstated set. Risk incompatibility is
// never waived, so a sole-option fund that is also risk-incompatible stays
// rejected. Input order is preserved in both outputs.
func FilterEligible(ctx context.Context, funds []models.ClassifiedFund, profile models.RiskProfile, mix models.TargetMix) (eligible []models.ClassifiedFund, rejected []models.RejectionReason) {
	// Fee pass over the whole set
	feeRejected := make(map[models.ISIN]bool)
	for _, f := range funds {
		if f.FeeRatio > MaxFeeRatio {
			feeRejected[f.ISIN] = true
		}
	}

	// Sole-option reinstatement, evaluated per slot after grouping by class
	for _, slot := range mix.Slots {
		var candidates []models.ClassifiedFund
		for _, f := range funds {
			if f.Class == slot.Class {
				candidates = append(candidates, f)
			}
		}
		if len(candidates) != 1 || !feeRejected[candidates[0].ISIN] {
			continue
		}
		sole := candidates[0]
		delete(feeRejected, sole.ISIN)
		log.Infof("eligibility: %s reinstated as sole option for %s despite %.2f%% fees", sole.ISIN, slot.Name, sole.FeeRatio)
		AddWarning(ctx, models.Warning{
			Code:    models.WarnSoleOptionReinstated,
			Message: fmt.Sprintf("%s kept despite %.2f%% fees: only candidate for the %s slot", sole.ISIN, sole.FeeRatio, slot.Name),
		})
	}

	// Risk-compatibility pass over the reinstated set
	for _, f := range funds {
		if feeRejected[f.ISIN] {
			reason := models.RejectionReason{
				ISIN:   f.ISIN,
				Name:   f.Name,
				Rule:   models.RejectFeeTooHigh,
				Detail: fmt.Sprintf("fee ratio %.2f%% exceeds the %.1f%% cap", f.FeeRatio, MaxFeeRatio),
			}
			rejected = append(rejected, reason)
			AddWarning(ctx, models.Warning{Code: models.WarnFeeRejection, Message: reason.Detail + " (" + string(f.ISIN) + ")"})
			continue
		}

		if detail, ok := riskIncompatibility(f, profile); ok {
			reason := models.RejectionReason{
				ISIN:   f.ISIN,
				Name:   f.Name,
				Rule:   models.RejectRiskIncompatible,
				Detail: detail,
			}
			rejected = append(rejected, reason)
			AddWarning(ctx, models.Warning{Code: models.WarnRiskRejection, Message: detail + " (" + string(f.ISIN) + ")"})
			continue
		}

		eligible = append(eligible, f)
	}

	return eligible, rejected
}

// riskIncompatibility reports whether a fund violates the fixed
// compatibility table for the profile, and why.
func riskIncompatibility(f models.ClassifiedFund, profile models.RiskProfile) (string, bool) {
	for _, tag := range incompatibleTags[profile] {
		if f.Tag == tag {
			return fmt.Sprintf("%s funds are incompatible with a %s profile", tag, profile), true
		}
	}

	maxScore, ok := maxRiskScore[profile]
	if !ok {
		// Unknown profile: the mix lookup already failed upstream
		return "", false
	}
	if f.RiskScore != models.RiskScoreUnknown && f.RiskScore > maxScore {
		return fmt.Sprintf("risk score %d exceeds the %s profile cap of %d", f.RiskScore, profile, maxScore), true
	}
	return "", false
}
