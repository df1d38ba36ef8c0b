package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pensionunlock/policypilot/internal/models"
	"github.com/pensionunlock/policypilot/internal/research"
)

// FundHandler handles single-fund research endpoints
type FundHandler struct {
	researcher research.FundResearcher
}

// NewFundHandler creates a new FundHandler
func NewFundHandler(researcher research.FundResearcher) *FundHandler {
	return &FundHandler{
		researcher: researcher,
	}
}

// Get handles GET /funds/:isin
// @Summary Research a single fund by identifier
// @Produce json
// @Param isin path string true "12-character fund identifier"
// @Success 200 {object} models.FundResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /funds/{isin} [get]
func (h *FundHandler) Get(c *gin.Context) {
	id, err := models.ParseISIN(c.Param("isin"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	metrics, err := h.researcher.Lookup(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, research.ErrUnresolved) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "no metrics could be found for " + string(id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.FundResponse{Fund: metrics})
}
