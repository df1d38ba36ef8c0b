package services

import (
	"testing"

	"github.com/pensionunlock/policypilot/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		category  string
		wantClass models.AssetClass
		wantTag   models.SpecialtyTag
	}{
		{"iShares Core MSCI World", "Global Equity Index", models.AssetEquity, models.TagNone},
		{"Vanguard Global Bond Index", "Fixed Income", models.AssetDefensive, models.TagNone},
		{"Euro Money Market Fund", "", models.AssetDefensive, models.TagNone},
		{"21Shares Bitcoin ETP", "Crypto", models.AssetSpecialty, models.TagCrypto},
		{"Invesco Physical Gold", "Commodities", models.AssetSpecialty, models.TagCommodity},
		{"Mystery Vehicle III", "", models.AssetSpecialty, models.TagNone},
	}

	for _, tc := range cases {
		got := Classify(models.FundMetrics{ISIN: "XX0000000000", Name: tc.name, Category: tc.category})
		if got.Class != tc.wantClass {
			t.Errorf("%q: expected class %s, got %s", tc.name, tc.wantClass, got.Class)
		}
		if got.Tag != tc.wantTag {
			t.Errorf("%q: expected tag %q, got %q", tc.name, tc.wantTag, got.Tag)
		}
	}
}

func TestClassify_AmbiguousDefaultsToSpecialty(t *testing.T) {
	// Matches both equity and defensive keyword groups
	got := Classify(models.FundMetrics{Name: "Balanced Equity and Bond Fund"})
	if got.Class != models.AssetSpecialty {
		t.Errorf("expected ambiguous fund to default to Specialty, got %s", got.Class)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	m := models.FundMetrics{ISIN: "IE00B4L5Y983", Name: "World Equity Index"}
	first := Classify(m)
	for i := 0; i < 5; i++ {
		if got := Classify(m); got.Class != first.Class || got.Tag != first.Tag {
			t.Fatalf("classification changed across runs: %v vs %v", got, first)
		}
	}
}
