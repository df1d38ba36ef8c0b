package models

// Slot is a named position in a target asset mix, filled by at most one fund.
type Slot struct {
	Name    string     `json:"name"`
	Class   AssetClass `json:"class"`
	Percent float64    `json:"percent"`
}

// TargetMix is the ordered slot allocation for a risk profile.
// The four profile mixes are fixed lookup tables, never derived at runtime.
type TargetMix struct {
	Strategy string `json:"strategy"`
	Slots    []Slot `json:"slots"`
}

// Slot names shared by the mix tables and gap reporting.
const (
	SlotEquityCore      = "Equity Core"
	SlotDefensiveAnchor = "Defensive Anchor"
)

var targetMixes = map[RiskProfile]TargetMix{
	RiskConservative: {
		Strategy: "Capital Preservation",
		Slots: []Slot{
			{Name: SlotEquityCore, Class: AssetEquity, Percent: 30},
			{Name: SlotDefensiveAnchor, Class: AssetDefensive, Percent: 70},
		},
	},
	RiskBalanced: {
		Strategy: "Balanced Core-Satellite",
		Slots: []Slot{
			{Name: SlotEquityCore, Class: AssetEquity, Percent: 60},
			{Name: SlotDefensiveAnchor, Class: AssetDefensive, Percent: 40},
		},
	},
	RiskGrowth: {
		Strategy: "Growth Tilt",
		Slots: []Slot{
			{Name: SlotEquityCore, Class: AssetEquity, Percent: 80},
			{Name: SlotDefensiveAnchor, Class: AssetDefensive, Percent: 20},
		},
	},
	RiskAggressive: {
		Strategy: "All-Equity Growth",
		Slots: []Slot{
			{Name: SlotEquityCore, Class: AssetEquity, Percent: 100},
		},
	},
}

// TargetMixFor returns the fixed target mix for a risk profile.
// The returned slot slice is a copy; callers may not mutate the tables.
func TargetMixFor(profile RiskProfile) (TargetMix, bool) {
	mix, ok := targetMixes[profile]
	if !ok {
		return TargetMix{}, false
	}
	slots := make([]Slot, len(mix.Slots))
	copy(slots, mix.Slots)
	mix.Slots = slots
	return mix, true
}

// SelectionRule names the scoring rule that produced a slot winner.
// The values double as the rationale strings shown in reports.
type SelectionRule string

const (
	RuleHighestSharpe    SelectionRule = "Highest Sharpe Ratio"
	RuleLowestVolatility SelectionRule = "Lowest Volatility"
	RuleLowestFees       SelectionRule = "Lowest Fees (tie-break)"
)

// SlotWinner records the chosen fund for one slot.
// Fund is nil for an unfilled slot.
type SlotWinner struct {
	Slot      string          `json:"slot"`
	Fund      *ClassifiedFund `json:"fund,omitempty"`
	Rationale SelectionRule   `json:"rationale,omitempty"`
	Percent   float64         `json:"percent"`
}

// GapWarning marks a slot that no eligible fund could fill.
type GapWarning struct {
	Slot    string `json:"slot"`
	Message string `json:"message"`
}

// RejectionRule identifies which eligibility rule rejected a fund.
type RejectionRule string

const (
	RejectFeeTooHigh       RejectionRule = "fee_too_high"
	RejectRiskIncompatible RejectionRule = "risk_incompatible"
)

// RejectionReason records why a fund was excluded from selection.
// Rejections are data surfaced in the report, not errors.
type RejectionReason struct {
	ISIN   ISIN          `json:"isin"`
	Name   string        `json:"name,omitempty"`
	Rule   RejectionRule `json:"rule"`
	Detail string        `json:"detail"`
}

// PortfolioResult is the final allocation record for one request.
// Immutable after construction.
type PortfolioResult struct {
	RequestID    string            `json:"request_id"`
	Profile      RiskProfile       `json:"profile"`
	Strategy     string            `json:"strategy"`
	HorizonYears int               `json:"horizon_years,omitempty"` // informational only
	Winners      []SlotWinner      `json:"winners"`
	Gaps         []GapWarning      `json:"gaps,omitempty"`
	Rejections   []RejectionReason `json:"rejections,omitempty"`
	Eligible     []ClassifiedFund  `json:"eligible"`             // full eligible set, for the data appendix
	Unresolved   []ISIN            `json:"unresolved,omitempty"` // identifiers with no discoverable metrics
}
