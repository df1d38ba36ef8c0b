package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pensionunlock/policypilot/internal/isin"
	"github.com/pensionunlock/policypilot/internal/models"
	"github.com/pensionunlock/policypilot/internal/services"
)

// RecommendHandler handles portfolio recommendation endpoints
type RecommendHandler struct {
	advisorSvc *services.AdvisorService
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(advisorSvc *services.AdvisorService) *RecommendHandler {
	return &RecommendHandler{
		advisorSvc: advisorSvc,
	}
}

// Recommend handles POST /recommendations
// @Summary Build a portfolio recommendation from raw fund text
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "user text, risk profile and optional horizon"
// @Success 200 {object} models.RecommendResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /recommendations [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	profile, err := models.ParseRiskProfile(req.RiskProfile)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "risk_profile must be Conservative, Balanced, Growth or Aggressive",
		})
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	result, err := h.advisorSvc.Recommend(ctx, req.Text, profile, req.HorizonYears)
	if err != nil {
		switch {
		case errors.Is(err, isin.ErrEmptyInput):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:   "empty_input",
				Message: "no fund identifiers found; please paste your fund list (12-character codes)",
			})
		case errors.Is(err, services.ErrNoData):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:   "no_data",
				Message: "none of the identifiers could be resolved; please verify them or retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "internal_error",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.RecommendResponse{
		Result:   result,
		Report:   services.RenderBlueprint(result),
		Warnings: wc.GetWarnings(),
	})
}
