package models

import (
	"fmt"
	"regexp"
	"strings"
)

// ISIN is a 12-character alphanumeric fund identifier.
// It is stored uppercase; syntactic validity does not imply the fund exists.
type ISIN string

var isinPattern = regexp.MustCompile(`^[A-Z0-9]{12}$`)

// ParseISIN validates and normalizes a raw identifier string.
func ParseISIN(raw string) (ISIN, error) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if !isinPattern.MatchString(upper) {
		return "", fmt.Errorf("invalid ISIN %q: must be exactly 12 alphanumeric characters", raw)
	}
	return ISIN(upper), nil
}

// RiskProfile represents the user's risk appetite
type RiskProfile string

const (
	RiskConservative RiskProfile = "Conservative"
	RiskBalanced     RiskProfile = "Balanced"
	RiskGrowth       RiskProfile = "Growth"
	RiskAggressive   RiskProfile = "Aggressive"
)

// ParseRiskProfile maps a raw string (case-insensitive, accepting the
// Low/Medium/High synonyms users tend to write) to a RiskProfile.
func ParseRiskProfile(raw string) (RiskProfile, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "conservative", "low":
		return RiskConservative, nil
	case "balanced", "medium", "moderate":
		return RiskBalanced, nil
	case "growth", "high":
		return RiskGrowth, nil
	case "aggressive", "very high":
		return RiskAggressive, nil
	}
	return "", fmt.Errorf("unknown risk profile %q", raw)
}

// AssetClass represents the broad asset class of a fund
type AssetClass string

const (
	AssetEquity    AssetClass = "Equity"
	AssetDefensive AssetClass = "Defensive"
	AssetSpecialty AssetClass = "Specialty"
)

// SpecialtyTag refines Specialty funds for risk-compatibility checks
type SpecialtyTag string

const (
	TagNone      SpecialtyTag = ""
	TagCrypto    SpecialtyTag = "Crypto"
	TagCommodity SpecialtyTag = "Commodity"
)

// RiskScoreUnknown marks a fund whose SRRI score could not be determined.
// Known scores are ordinal 1-7.
const RiskScoreUnknown = 0

// FundMetrics holds the observed metrics for a researched fund.
// Created by a FundResearcher implementation; read-only downstream.
// Percentages are expressed as plain numbers (7.5 means 7.5%).
type FundMetrics struct {
	ISIN          ISIN    `json:"isin"`
	Name          string  `json:"name,omitempty"`
	Category      string  `json:"category,omitempty"` // raw category text from the fact sheet, used by classification
	OneYearReturn float64 `json:"one_year_return"`    // may be negative
	Volatility    float64 `json:"volatility"`         // non-negative
	FeeRatio      float64 `json:"fee_ratio"`          // TER, non-negative
	RiskScore     int     `json:"risk_score"`         // SRRI 1-7, RiskScoreUnknown if not found
}

// ClassifiedFund is a FundMetrics with its asset class assigned.
// The class is assigned exactly once and never changes afterwards.
type ClassifiedFund struct {
	FundMetrics
	Class AssetClass   `json:"class"`
	Tag   SpecialtyTag `json:"tag,omitempty"`
}
