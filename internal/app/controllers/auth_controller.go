// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pravartak/mentorhub/internal/app/models/dto"
	"github.com/pravartak/mentorhub/internal/app/services"
	"github.com/pravartak/mentorhub/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// RegisterMentor handles mentor registration
// @Summary Register a new mentor
// @Description Creates a mentor account with the provided information
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterMentorRequest true "Mentor registration information"
// @Success 201 {object} dto.APIResponse{data=dto.MentorResponse} "Mentor created"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) RegisterMentor(ctx *gin.Context) {
	var req dto.RegisterMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mentor, err := c.authService.RegisterMentor(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("mentorID", mentor.ID).Msg("Mentor registration completed")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"mentor": mentor}))
}

// Login handles mentor and student login
// @Summary Authenticate a mentor or student
// @Description Authenticates by email and password. Mentor accounts take precedence when an email is registered to both entity types.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing email or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	login, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(login))
}
