// Package factsheet is an HTTP client for a fund fact-sheet API, serving as
// the live-data implementation of the research collaborator.
package factsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pensionunlock/policypilot/internal/models"
	"github.com/pensionunlock/policypilot/internal/research"
)

// Client is an HTTP client for the fact-sheet API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new fact-sheet client
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Lookup fetches the fact sheet for an identifier and maps it to FundMetrics.
// A 404 or an empty payload is reported as research.ErrUnresolved; metrics
// are never fabricated from partial data missing the core figures.
func (c *Client) Lookup(ctx context.Context, id models.ISIN) (*models.FundMetrics, error) {
	params := url.Values{}
	params.Set("isin", string(id))
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/factsheet?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fact-sheet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, research.ErrUnresolved
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fact-sheet API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var sheet FactSheetResponse
	if err := json.Unmarshal(body, &sheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if sheet.ISIN == "" || sheet.OneYearReturn == nil || sheet.Volatility == nil || sheet.TER == nil {
		// Core figures missing: unresolved rather than guessed
		return nil, research.ErrUnresolved
	}

	metrics := &models.FundMetrics{
		ISIN:          id,
		Name:          sheet.Name,
		Category:      sheet.Category,
		OneYearReturn: *sheet.OneYearReturn,
		Volatility:    *sheet.Volatility,
		FeeRatio:      *sheet.TER,
		RiskScore:     models.RiskScoreUnknown,
	}
	if sheet.SRRI != nil && *sheet.SRRI >= 1 && *sheet.SRRI <= 7 {
		metrics.RiskScore = *sheet.SRRI
	}
	return metrics, nil
}
