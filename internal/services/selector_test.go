package services

import (
	"context"
	"testing"

	"github.com/pensionunlock/policypilot/internal/models"
)

func equityFund(id models.ISIN, ret, vol, fee float64) models.ClassifiedFund {
	return models.ClassifiedFund{
		FundMetrics: models.FundMetrics{ISIN: id, OneYearReturn: ret, Volatility: vol, FeeRatio: fee},
		Class:       models.AssetEquity,
	}
}

func defensiveFund(id models.ISIN, vol, fee float64) models.ClassifiedFund {
	return models.ClassifiedFund{
		FundMetrics: models.FundMetrics{ISIN: id, OneYearReturn: 2, Volatility: vol, FeeRatio: fee},
		Class:       models.AssetDefensive,
	}
}

var equitySlot = models.Slot{Name: models.SlotEquityCore, Class: models.AssetEquity, Percent: 60}
var defensiveSlot = models.Slot{Name: models.SlotDefensiveAnchor, Class: models.AssetDefensive, Percent: 40}

func TestSelectWinner_HighestSharpeWins(t *testing.T) {
	// Scenario D: A scores 0.8, B scores 1.2 despite the lower return
	a := equityFund("AA0000000001", 8, 10, 0.5)
	b := equityFund("BB0000000002", 6, 5, 0.5)

	w := SelectWinner(context.Background(), equitySlot, []models.ClassifiedFund{a, b})
	if w == nil || w.Fund == nil {
		t.Fatal("expected a winner")
	}
	if w.Fund.ISIN != "BB0000000002" {
		t.Errorf("expected B to win on Sharpe, got %s", w.Fund.ISIN)
	}
	if w.Rationale != models.RuleHighestSharpe {
		t.Errorf("expected Sharpe rationale, got %q", w.Rationale)
	}
}

func TestSelectWinner_LowestVolatilityForDefensive(t *testing.T) {
	a := defensiveFund("AA0000000001", 6, 0.3)
	b := defensiveFund("BB0000000002", 3, 0.9)

	w := SelectWinner(context.Background(), defensiveSlot, []models.ClassifiedFund{a, b})
	if w.Fund.ISIN != "BB0000000002" {
		t.Errorf("expected the lower-volatility fund, got %s", w.Fund.ISIN)
	}
	if w.Rationale != models.RuleLowestVolatility {
		t.Errorf("expected volatility rationale, got %q", w.Rationale)
	}
}

func TestSelectWinner_FeeTieBreak(t *testing.T) {
	// Identical Sharpe (1.0), fees decide
	a := equityFund("AA0000000001", 10, 10, 1.2)
	b := equityFund("BB0000000002", 10, 10, 0.4)

	ctx, wc := NewWarningContext(context.Background())
	w := SelectWinner(ctx, equitySlot, []models.ClassifiedFund{a, b})
	if w.Fund.ISIN != "BB0000000002" {
		t.Errorf("expected the cheaper fund on a score tie, got %s", w.Fund.ISIN)
	}
	if w.Rationale != models.RuleLowestFees {
		t.Errorf("expected fee tie-break rationale, got %q", w.Rationale)
	}
	if wc.CountByCode(models.WarnTieBreakApplied) != 1 {
		t.Errorf("expected a tie-break warning")
	}
}

func TestSelectWinner_FirstSeenTieBreakDeterministic(t *testing.T) {
	// Identical score and fees: the first-seen fund must win, every run
	a := equityFund("AA0000000001", 10, 10, 0.5)
	b := equityFund("BB0000000002", 10, 10, 0.5)

	for i := 0; i < 10; i++ {
		w := SelectWinner(context.Background(), equitySlot, []models.ClassifiedFund{a, b})
		if w.Fund.ISIN != "AA0000000001" {
			t.Fatalf("run %d: expected first-seen fund to win, got %s", i, w.Fund.ISIN)
		}
	}
}

func TestSelectWinner_EmptyCandidates(t *testing.T) {
	if w := SelectWinner(context.Background(), equitySlot, nil); w != nil {
		t.Errorf("expected nil for empty candidate set, got %v", w)
	}
}

func TestSelectWinner_ZeroVolatilityDoesNotDivideByZero(t *testing.T) {
	a := equityFund("AA0000000001", 5, 0, 0.5)
	b := equityFund("BB0000000002", 4, 10, 0.5)

	w := SelectWinner(context.Background(), equitySlot, []models.ClassifiedFund{a, b})
	if w.Fund.ISIN != "AA0000000001" {
		t.Errorf("expected the zero-volatility fund to score highest, got %s", w.Fund.ISIN)
	}
}
