package models

// RecommendRequest represents the request body for building a recommendation
type RecommendRequest struct {
	Text         string `json:"text" binding:"required"`         // raw user text containing fund identifiers
	RiskProfile  string `json:"risk_profile" binding:"required"` // Conservative | Balanced | Growth | Aggressive (synonyms accepted)
	HorizonYears int    `json:"horizon_years"`                   // optional, informational only
}

// RecommendResponse wraps the portfolio result together with the rendered
// report and the warnings collected during the run.
type RecommendResponse struct {
	Result   *PortfolioResult `json:"result"`
	Report   string           `json:"report"`
	Warnings []Warning        `json:"warnings,omitempty"`
}

// FundResponse represents a single researched fund
type FundResponse struct {
	Fund *FundMetrics `json:"fund"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
