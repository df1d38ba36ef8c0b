package models

// WarningCode categorizes warnings by pipeline stage.
// W1xxx = research, W2xxx = eligibility, W3xxx = selection, W4xxx = assembly.
type WarningCode string

const (
	WarnUnresolvedISIN       WarningCode = "W1001" // identifier with no discoverable metrics (dropped from selection)
	WarnResearchCancelled    WarningCode = "W1002" // lookup cancelled or timed out, treated as unresolved
	WarnFeeRejection         WarningCode = "W2001" // fund rejected for fees above the cap
	WarnRiskRejection        WarningCode = "W2002" // fund rejected as risk-incompatible with the profile
	WarnSoleOptionReinstated WarningCode = "W2003" // fee-rejected fund reinstated as the sole candidate for its slot
	WarnTieBreakApplied      WarningCode = "W3001" // slot winner decided by a tie-break rather than the primary score
	WarnPortfolioGap         WarningCode = "W4001" // slot left unfilled by the user's fund list
)

// Warning represents a non-fatal event emitted during pipeline processing.
// Warnings are structured data for an external observability layer; the
// pipeline itself never acts on them.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
