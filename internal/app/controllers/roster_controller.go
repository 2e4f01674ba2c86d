package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pravartak/mentorhub/internal/app/models/dto"
	"github.com/pravartak/mentorhub/internal/app/services"
	"github.com/pravartak/mentorhub/internal/middleware"
)

// RosterController handles student roster operations
type RosterController struct {
	rosterService services.RosterService
	logger        zerolog.Logger
}

// NewRosterController creates a new RosterController
func NewRosterController(rosterService services.RosterService, logger zerolog.Logger) *RosterController {
	return &RosterController{
		rosterService: rosterService,
		logger:        logger,
	}
}

// AddStudent adds a student to a mentor's roster
// @Summary Add a student
// @Description Creates a student record under the given mentor. The account receives the configured default password.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Student email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *RosterController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add-student request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.rosterService.AddStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", student.ID).Int64("mentorID", student.MentorID).Msg("Student added to roster")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"student": student}))
}

// GetStudentsByMentor lists a mentor's roster
// @Summary List a mentor's students
// @Description Returns every student assigned to the mentor, in insertion order
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param mentorId path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Roster"
// @Failure 400 {object} dto.ErrorResponse "Malformed mentor ID"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/{mentorId}/students [get]
func (c *RosterController) GetStudentsByMentor(ctx *gin.Context) {
	mentorID, err := strconv.ParseInt(ctx.Param("mentorId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentor ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	students, err := c.rosterService.GetStudentsByMentor(ctx.Request.Context(), mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.StudentListResponse{Students: students}))
}

// GetStudent fetches a single student record
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student"
// @Failure 400 {object} dto.ErrorResponse "Malformed student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *RosterController) GetStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.rosterService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"student": student}))
}

// UpdateStudent applies a partial update to a student's tracked signals
// @Summary Update a student's signals
// @Description Updates only the supplied fields. Identity fields cannot be changed here.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse "Update applied"
// @Failure 400 {object} dto.ErrorResponse "Empty update set or malformed fields"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *RosterController) UpdateStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update-student request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.UpdateStudent(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", id).Msg("Student signals updated")
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
