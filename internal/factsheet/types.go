package factsheet

// FactSheetResponse represents the fact-sheet API payload for one fund.
// The numeric fields are pointers so that absent figures can be told apart
// from genuine zeros.
type FactSheetResponse struct {
	ISIN          string   `json:"isin"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	OneYearReturn *float64 `json:"one_year_return_pct"`
	Volatility    *float64 `json:"volatility_pct"`
	TER           *float64 `json:"ter_pct"`
	SRRI          *int     `json:"srri"`
}
