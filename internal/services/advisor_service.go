package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/pensionunlock/policypilot/internal/isin"
	"github.com/pensionunlock/policypilot/internal/metrics"
	"github.com/pensionunlock/policypilot/internal/models"
	"github.com/pensionunlock/policypilot/internal/research"
)

// AdvisorService runs the full recommendation pipeline: extract identifiers,
// research them, classify, filter, select per slot, detect gaps, assemble.
type AdvisorService struct {
	researcher  research.FundResearcher
	collector   *metrics.PipelineCollector
	lookupLimit int
}

// NewAdvisorService creates a new AdvisorService. collector may be nil.
func NewAdvisorService(researcher research.FundResearcher, collector *metrics.PipelineCollector) *AdvisorService {
	return &AdvisorService{
		researcher:  researcher,
		collector:   collector,
		lookupLimit: research.DefaultLookupLimit,
	}
}

// Recommend builds a portfolio recommendation from raw user text and a risk
// profile. Returns isin.ErrEmptyInput when the text carries no identifiers,
// ErrNoData when nothing resolves, and ErrIncompleteMix only on a defective
// mix table. All other outcomes land in the result.
func (s *AdvisorService) Recommend(ctx context.Context, text string, profile models.RiskProfile, horizonYears int) (*models.PortfolioResult, error) {
	mix, ok := models.TargetMixFor(profile)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}

	ids, err := isin.ExtractIdentifiers(text)
	if err != nil {
		return nil, err
	}
	log.Infof("advisor: extracted %d identifiers for %s profile", len(ids), profile)

	// Research fans out concurrently but fans in by first-seen order, so
	// every later stage sees candidates in extraction order.
	session := research.NewSessionResearcher(s.researcher)
	resolved, unresolved := research.ResearchAll(ctx, session, ids, s.lookupLimit)
	for _, id := range unresolved {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnUnresolvedISIN,
			Message: fmt.Sprintf("no metrics found for %s; excluded from selection", id),
		})
	}
	if len(resolved) == 0 {
		return nil, fmt.Errorf("%w (%d identifiers tried)", ErrNoData, len(ids))
	}

	classified := make([]models.ClassifiedFund, 0, len(resolved))
	for _, m := range resolved {
		classified = append(classified, Classify(*m))
	}

	eligible, rejected := FilterEligible(ctx, classified, profile, mix)

	winners := make([]models.SlotWinner, 0, len(mix.Slots))
	for _, slot := range mix.Slots {
		var candidates []models.ClassifiedFund
		for _, f := range eligible {
			if f.Class == slot.Class {
				candidates = append(candidates, f)
			}
		}
		if w := SelectWinner(ctx, slot, candidates); w != nil {
			winners = append(winners, *w)
		} else {
			winners = append(winners, models.SlotWinner{Slot: slot.Name})
		}
	}

	gaps := FindGaps(ctx, mix, winners)

	result, err := AssemblePortfolio(profile, horizonYears, mix, winners, gaps, rejected, eligible, unresolved)
	if err != nil {
		return nil, err
	}

	rejectionCounts := make(map[string]int)
	for _, r := range rejected {
		rejectionCounts[string(r.Rule)]++
	}
	s.collector.ObserveRun(string(profile), len(ids), len(unresolved), rejectionCounts, len(gaps))

	filled := 0
	for _, w := range result.Winners {
		if w.Fund != nil {
			filled++
		}
	}
	log.Infof("advisor: %s run %s: %d winners, %d gaps, %d rejections, %d unresolved",
		profile, result.RequestID, filled, len(gaps), len(rejected), len(unresolved))
	return result, nil
}
