package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pravartak/mentorhub/internal/app/models/dto"
	"github.com/pravartak/mentorhub/internal/app/services"
	"github.com/pravartak/mentorhub/internal/middleware"
)

// RiskController handles dropout prediction and risk scoring
type RiskController struct {
	riskService services.RiskService
	logger      zerolog.Logger
}

// NewRiskController creates a new RiskController
func NewRiskController(riskService services.RiskService, logger zerolog.Logger) *RiskController {
	return &RiskController{
		riskService: riskService,
		logger:      logger,
	}
}

// PredictDropout returns the classifier's raw verdict for a set of signals
// @Summary Predict dropout
// @Description Runs the classifier over the supplied signals and returns the binary label with the model's confidence
// @Tags risk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PredictRequest true "Student signals"
// @Success 200 {object} dto.APIResponse{data=dto.DropoutPredictionResponse} "Prediction"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed signals"
// @Failure 500 {object} dto.ErrorResponse "Model unavailable or prediction failed"
// @Router /predict/dropout [post]
func (c *RiskController) PredictDropout(ctx *gin.Context) {
	var req dto.PredictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid prediction request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	prediction, err := c.riskService.PredictDropout(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(prediction))
}

// ScoreRisk maps the classifier's at-risk probability to a risk level
// @Summary Score dropout risk
// @Description Returns a discrete risk level (Low, Medium, High) derived from the at-risk probability
// @Tags risk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PredictRequest true "Student signals"
// @Success 200 {object} dto.APIResponse{data=dto.RiskResponse} "Risk level"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed signals"
// @Failure 500 {object} dto.ErrorResponse "Model unavailable or prediction failed"
// @Router /predict/risk [post]
func (c *RiskController) ScoreRisk(ctx *gin.Context) {
	var req dto.PredictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid risk request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	risk, err := c.riskService.ScoreRisk(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(risk))
}

// ModelInfo reports whether the classifier is available
// @Summary Model diagnostics
// @Tags risk
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ModelInfoResponse} "Model status"
// @Router /model-info [get]
func (c *RiskController) ModelInfo(ctx *gin.Context) {
	info := c.riskService.ModelInfo(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(info))
}
