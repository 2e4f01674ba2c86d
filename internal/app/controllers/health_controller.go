package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController reports process liveness
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check responds to liveness probes
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Service is up"
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
