package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxsite/internal/pkg/response"
	"taxsite/internal/pkg/validator"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Estimate prices a questionnaire snapshot.
// @Summary Estimate fees
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Questionnaire answers"
// @Success 200 {object} EstimateResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/estimate [post]
func (h *Handler) Estimate(c *gin.Context) {
	req := EstimateRequest{Details: DefaultDetails()}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", errs)
		return
	}

	var policy ShareholderPolicy
	if req.LinearShareholders {
		policy = LinearShareholders
	}
	mode := req.Display
	if mode == "" {
		mode = DisplayYear
	}

	response.Success(c, http.StatusOK, NewEstimateResponse(CalculateWith(req.Details, policy), mode))
}
