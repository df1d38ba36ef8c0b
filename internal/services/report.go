package services

import (
	"fmt"
	"strings"

	"github.com/pensionunlock/policypilot/internal/models"
)

// RenderBlueprint formats a PortfolioResult as the markdown recommendation
// blueprint: strategy declaration, allocation table, gap analysis,
// commentary, and a data appendix over the full eligible set. Presentation
// only; it reads result fields and decides nothing.
func RenderBlueprint(res *models.PortfolioResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**1. The Strategy Declaration**\n\n")
	fmt.Fprintf(&b, "> Based on your %s profile, I recommend the **%s** Portfolio.\n\n", res.Profile, res.Strategy)

	b.WriteString("**2. The Portfolio Table**\n\n")
	b.WriteString("| Role in Portfolio | Allocation % | Best Fit Fund | ISIN | Primary Rationale |\n")
	b.WriteString("| :--- | :--- | :--- | :--- | :--- |\n")
	for _, w := range res.Winners {
		if w.Fund == nil {
			fmt.Fprintf(&b, "| %s | %.0f%% | — | — | unfilled |\n", w.Slot, w.Percent)
			continue
		}
		fmt.Fprintf(&b, "| %s | %.0f%% | %s | %s | %s |\n",
			w.Slot, w.Percent, fundDisplayName(w.Fund), w.Fund.ISIN, w.Rationale)
	}
	b.WriteString("\n")

	if len(res.Gaps) > 0 {
		b.WriteString("**3. Gap Analysis**\n\n")
		for _, g := range res.Gaps {
			fmt.Fprintf(&b, "WARNING: %s\n", g.Message)
		}
		b.WriteString("\n")
	}

	if commentary := renderCommentary(res); commentary != "" {
		b.WriteString("**4. The \"Why\" (Commentary)**\n\n")
		b.WriteString(commentary)
		b.WriteString("\n\n")
	}

	b.WriteString("**5. Data Appendix**\n\n")
	b.WriteString("| Fund Name | ISIN | 1y Perf | Volatility | Fees (TER) |\n")
	b.WriteString("| :--- | :--- | :--- | :--- | :--- |\n")
	for _, f := range res.Eligible {
		fmt.Fprintf(&b, "| %s | %s | %.2f%% | %.2f%% | %.2f%% |\n",
			fundDisplayName(&f), f.ISIN, f.OneYearReturn, f.Volatility, f.FeeRatio)
	}

	if len(res.Rejections) > 0 {
		b.WriteString("\nExcluded funds:\n")
		for _, r := range res.Rejections {
			fmt.Fprintf(&b, "- %s: %s\n", r.ISIN, r.Detail)
		}
	}
	if len(res.Unresolved) > 0 {
		b.WriteString("\nNo data could be found for: ")
		parts := make([]string, len(res.Unresolved))
		for i, id := range res.Unresolved {
			parts[i] = string(id)
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCommentary produces the synergy line for a fully or partly filled
// portfolio, naming the two lead funds when both exist.
func renderCommentary(res *models.PortfolioResult) string {
	var filled []models.SlotWinner
	for _, w := range res.Winners {
		if w.Fund != nil {
			filled = append(filled, w)
		}
	}
	switch len(filled) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%s carries the full allocation (%s).",
			fundDisplayName(filled[0].Fund), strings.ToLower(string(filled[0].Rationale)))
	default:
		return fmt.Sprintf("This mix balances %s in the %s slot with %s anchoring the %s slot.",
			fundDisplayName(filled[0].Fund), filled[0].Slot,
			fundDisplayName(filled[1].Fund), filled[1].Slot)
	}
}

func fundDisplayName(f *models.ClassifiedFund) string {
	if f.Name != "" {
		return f.Name
	}
	return string(f.ISIN)
}
