package research

import "github.com/pensionunlock/policypilot/internal/models"

// DemoDataset is a small curated fund universe for running the service
// without a fact-sheet API. Figures are illustrative, not live data.
func DemoDataset() []models.FundMetrics {
	return []models.FundMetrics{
		{
			ISIN: "IE00B4L5Y983", Name: "iShares Core MSCI World", Category: "Global Equity Index",
			OneYearReturn: 12.4, Volatility: 14.1, FeeRatio: 0.20, RiskScore: 5,
		},
		{
			ISIN: "LU0552385295", Name: "Morgan Stanley Global Opportunity", Category: "Global Equity",
			OneYearReturn: 15.2, Volatility: 18.3, FeeRatio: 1.84, RiskScore: 6,
		},
		{
			ISIN: "DE0008469008", Name: "DAX Index Fund", Category: "Equity Index",
			OneYearReturn: 9.0, Volatility: 16.0, FeeRatio: 1.10, RiskScore: 5,
		},
		{
			ISIN: "LU0321021155", Name: "Euro Government Bond Fund", Category: "Fixed Income",
			OneYearReturn: 3.1, Volatility: 4.2, FeeRatio: 0.50, RiskScore: 3,
		},
		{
			ISIN: "IE00B1FZS798", Name: "USD Treasury Bond UCITS", Category: "Government Bond",
			OneYearReturn: 2.4, Volatility: 3.8, FeeRatio: 0.07, RiskScore: 3,
		},
		{
			ISIN: "LU0904783114", Name: "Euro Money Market Fund", Category: "Money Market",
			OneYearReturn: 1.2, Volatility: 0.4, FeeRatio: 0.15, RiskScore: 1,
		},
		{
			ISIN: "CH0454664001", Name: "21Shares Bitcoin ETP", Category: "Crypto",
			OneYearReturn: 42.0, Volatility: 65.0, FeeRatio: 1.49, RiskScore: 7,
		},
		{
			ISIN: "IE00B579F325", Name: "Invesco Physical Gold", Category: "Commodities",
			OneYearReturn: 11.0, Volatility: 12.5, FeeRatio: 0.12, RiskScore: 4,
		},
		{
			ISIN: "LU0690375182", Name: "Expensive Emerging Equity", Category: "Emerging Markets Equity",
			OneYearReturn: 7.5, Volatility: 21.0, FeeRatio: 2.90, RiskScore: 6,
		},
	}
}
