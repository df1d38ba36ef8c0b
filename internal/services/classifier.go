package services

import (
	"strings"

	"github.com/pensionunlock/policypilot/internal/models"
)

// Keyword groups for asset-class heuristics. Matching runs against the
// lowercased fund name and category text.
var (
	defensiveKeywords = []string{
		"bond", "treasury", "gilt", "money market", "fixed income",
		"government", "short term", "cash",
	}
	equityKeywords = []string{
		"equity", "stock", "shares", "index", "msci", "s&p", "ftse",
		"nasdaq", "world", "dividend",
	}
	cryptoKeywords = []string{
		"crypto", "bitcoin", "ethereum", "digital asset", "blockchain",
	}
	commodityKeywords = []string{
		"commodity", "commodities", "gold", "silver", "oil", "energy",
		"precious metal",
	}
)

// Classify assigns an asset class from name/category heuristics. Pure
// function: the same metrics always yield the same class.
//
// Crypto and commodity keywords force Specialty with the matching tag.
// Otherwise a fund matching exactly one of the equity or defensive keyword
// groups gets that class; matching both or neither defaults to Specialty.
func Classify(m models.FundMetrics) models.ClassifiedFund {
	text := strings.ToLower(m.Name + " " + m.Category)

	if matchesAny(text, cryptoKeywords) {
		return models.ClassifiedFund{FundMetrics: m, Class: models.AssetSpecialty, Tag: models.TagCrypto}
	}
	if matchesAny(text, commodityKeywords) {
		return models.ClassifiedFund{FundMetrics: m, Class: models.AssetSpecialty, Tag: models.TagCommodity}
	}

	isDefensive := matchesAny(text, defensiveKeywords)
	isEquity := matchesAny(text, equityKeywords)

	switch {
	case isDefensive && !isEquity:
		return models.ClassifiedFund{FundMetrics: m, Class: models.AssetDefensive}
	case isEquity && !isDefensive:
		return models.ClassifiedFund{FundMetrics: m, Class: models.AssetEquity}
	default:
		return models.ClassifiedFund{FundMetrics: m, Class: models.AssetSpecialty}
	}
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
