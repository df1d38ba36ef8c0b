package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pensionunlock/policypilot/internal/models"
	"github.com/pensionunlock/policypilot/internal/research"
	"github.com/pensionunlock/policypilot/internal/services"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	dataset := []models.FundMetrics{
		{
			ISIN: "IE00B4L5Y983", Name: "iShares Core MSCI World", Category: "Global Equity Index",
			OneYearReturn: 12.4, Volatility: 14.1, FeeRatio: 0.2, RiskScore: 5,
		},
		{
			ISIN: "LU0552385295", Name: "Euro Government Bond Fund", Category: "Fixed Income",
			OneYearReturn: 3.1, Volatility: 4.2, FeeRatio: 0.5, RiskScore: 3,
		},
	}
	researcher := research.NewStaticResearcher(dataset)
	advisorSvc := services.NewAdvisorService(researcher, nil)

	router := gin.New()
	recommendHandler := NewRecommendHandler(advisorSvc)
	fundHandler := NewFundHandler(researcher)
	router.POST("/recommendations", recommendHandler.Recommend)
	router.GET("/funds/:isin", fundHandler.Get)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendEndpoint(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/recommendations", models.RecommendRequest{
		Text:        "Fund X IE00B4L5Y983 and Fund Y LU0552385295",
		RiskProfile: "Balanced",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Result == nil || len(resp.Result.Winners) != 2 {
		t.Fatalf("expected 2 winners, got %+v", resp.Result)
	}
	if resp.Report == "" {
		t.Error("expected a rendered report")
	}
}

func TestRecommendEndpoint_EmptyInput(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/recommendations", models.RecommendRequest{
		Text:        "no codes in here",
		RiskProfile: "Balanced",
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error: %v", err)
	}
	if resp.Error != "empty_input" {
		t.Errorf("expected empty_input, got %q", resp.Error)
	}
}

func TestRecommendEndpoint_NoData(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/recommendations", models.RecommendRequest{
		Text:        "ZZ9999999999 only",
		RiskProfile: "Growth",
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error != "no_data" {
		t.Errorf("expected no_data, got %q", resp.Error)
	}
}

func TestRecommendEndpoint_BadProfile(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/recommendations", models.RecommendRequest{
		Text:        "IE00B4L5Y983",
		RiskProfile: "YOLO",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestFundEndpoint(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/funds/IE00B4L5Y983", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.FundResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Fund == nil || resp.Fund.Name != "iShares Core MSCI World" {
		t.Errorf("wrong fund returned: %+v", resp.Fund)
	}
}

func TestFundEndpoint_NotFoundAndInvalid(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/funds/ZZ9999999999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unresolved fund, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/funds/tooshort", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed identifier, got %d", w.Code)
	}
}
