// Package isin extracts candidate fund identifiers from free-form user text.
package isin

import (
	"errors"
	"regexp"
	"strings"

	"github.com/pensionunlock/policypilot/internal/models"
)

// ErrEmptyInput is returned when the input text contains no candidate
// identifiers at all, so the caller can ask the user for their fund list
// instead of silently producing an empty portfolio.
var ErrEmptyInput = errors.New("no fund identifiers found in input text")

// tokenPattern matches maximal alphanumeric runs. Runs of exactly 12
// characters are identifier candidates; longer runs are not (a 13-character
// token never contains a valid identifier).
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// ExtractIdentifiers scans text for 12-character alphanumeric tokens and
// returns them uppercased, deduplicated, in first-appearance order. No
// registry validation happens here: a syntactically valid but nonexistent
// identifier is passed through and fails later at research time.
func ExtractIdentifiers(text string) ([]models.ISIN, error) {
	seen := make(map[models.ISIN]bool)
	var out []models.ISIN

	for _, token := range tokenPattern.FindAllString(text, -1) {
		if len(token) != 12 {
			continue
		}
		id := models.ISIN(strings.ToUpper(token))
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}
