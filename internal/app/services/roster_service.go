package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pravartak/mentorhub/internal/app/models"
	"github.com/pravartak/mentorhub/internal/app/models/dto"
	"github.com/pravartak/mentorhub/internal/app/repositories"
	"github.com/pravartak/mentorhub/internal/pkg/apperrors"
	"github.com/pravartak/mentorhub/internal/pkg/auth"
	"github.com/pravartak/mentorhub/internal/pkg/validation"
)

type rosterService struct {
	mentorRepo  repositories.IMentorRepository
	studentRepo repositories.IStudentRepository
	// defaultPasswordHash is the bcrypt hash of the system-wide default
	// student password, computed once at startup. A student's stored
	// credential is never mentor-supplied.
	defaultPasswordHash string
	logger              zerolog.Logger
}

// NewRosterService creates a new RosterService. defaultPassword is the
// configured plaintext default assigned to every new student.
func NewRosterService(
	mentorRepo repositories.IMentorRepository,
	studentRepo repositories.IStudentRepository,
	defaultPassword string,
	logger zerolog.Logger,
) (RosterService, error) {
	hash, err := auth.HashPassword(defaultPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing default student password: %w", err)
	}

	return &rosterService{
		mentorRepo:          mentorRepo,
		studentRepo:         studentRepo,
		defaultPasswordHash: hash,
		logger:              logger,
	}, nil
}

// AddStudent validates and inserts a student for an existing mentor.
// Validation order: presence (all missing fields reported), enum membership,
// numeric parse. The returned record is read back from storage with numeric
// fields in their semantic types.
func (s *rosterService) AddStudent(ctx context.Context, req *dto.AddStudentRequest) (*dto.StudentResponse, error) {
	result := validation.NewResult().
		Require("full_name", req.FullName).
		Require("email", req.Email).
		Require("account_type", req.AccountType)
	if isMissing(req.CurrentCGPA) {
		result.AddError("current_cgpa", "is required")
	}
	if isMissing(req.AttendancePercentage) {
		result.AddError("attendance_percentage", "is required")
	}
	result.Require("fee_status", req.FeeStatus)
	if isMissing(req.Backlogs) {
		result.AddError("backlogs", "is required")
	}
	if isMissing(req.MentorID) {
		result.AddError("mentor_id", "is required")
	}
	if result.HasErrors() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, result.MissingFieldsMessage()).
			WithDetails(map[string]interface{}{"fields": result.Fields()})
	}

	accountType := models.AccountType(req.AccountType)
	if !accountType.IsValid() {
		return nil, apperrors.NewValidationError("Invalid account_type")
	}

	feeStatus := models.FeeStatus(req.FeeStatus)
	if !feeStatus.IsValid() {
		return nil, apperrors.NewValidationError("Invalid fee_status")
	}

	cgpa, errCGPA := coerceFloat(req.CurrentCGPA)
	attendance, errAtt := coerceFloat(req.AttendancePercentage)
	backlogs, errBack := coerceInt(req.Backlogs)
	mentorID, errMentor := coerceInt(req.MentorID)
	if errCGPA != nil || errAtt != nil || errBack != nil || errMentor != nil {
		return nil, apperrors.NewValidationError("Invalid numeric fields")
	}

	student := &models.Student{
		FullName:             strings.TrimSpace(req.FullName),
		Email:                validation.NormalizeEmail(req.Email),
		Password:             s.defaultPasswordHash,
		AccountType:          accountType,
		ParentName:           req.ParentName,
		ParentEmail:          req.ParentEmail,
		CurrentCGPA:          cgpa,
		AttendancePercentage: attendance,
		FeeStatus:            feeStatus,
		Backlogs:             backlogs,
		MentorID:             int64(mentorID),
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrMentorNotFound) || errors.Is(err, apperrors.ErrStudentEmailAlreadyExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", student.Email).Msg("Failed to create student")
		return nil, fmt.Errorf("%w: error creating student", apperrors.ErrPersistence)
	}

	s.logger.Info().
		Int64("studentID", created.ID).
		Int64("mentorID", created.MentorID).
		Msg("Student added to roster")

	resp := dto.NewStudentResponse(created)
	return &resp, nil
}

// GetStudentsByMentor returns a mentor's roster in storage order. The mentor
// is checked first so a missing mentor is a not-found, never an empty list.
func (s *rosterService) GetStudentsByMentor(ctx context.Context, mentorID int64) ([]dto.StudentResponse, error) {
	exists, err := s.mentorRepo.Exists(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("%w: error checking mentor", apperrors.ErrPersistence)
	}
	if !exists {
		return nil, apperrors.ErrMentorNotFound
	}

	students, err := s.studentRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing students", apperrors.ErrPersistence)
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, dto.NewStudentResponse(&students[i]))
	}
	return responses, nil
}

// GetStudent returns a single student record
func (s *rosterService) GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: error fetching student", apperrors.ErrPersistence)
	}

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// UpdateStudent applies a partial update to the tracked signals. At least one
// field must be supplied; parse failure of any supplied field fails the whole
// call with nothing applied.
func (s *rosterService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	if req.IsEmpty() {
		return apperrors.ErrNoFieldsToUpdate
	}

	update := repositories.StudentUpdate{}

	if req.FeeStatus != nil {
		feeStatus := models.FeeStatus(*req.FeeStatus)
		if !feeStatus.IsValid() {
			return apperrors.NewValidationError("Invalid fee_status")
		}
		update.FeeStatus = &feeStatus
	}

	if req.CurrentCGPA != nil {
		cgpa, err := coerceFloat(req.CurrentCGPA)
		if err != nil {
			return apperrors.NewValidationError("Invalid numeric fields")
		}
		update.CurrentCGPA = &cgpa
	}

	if req.AttendancePercentage != nil {
		attendance, err := coerceFloat(req.AttendancePercentage)
		if err != nil {
			return apperrors.NewValidationError("Invalid numeric fields")
		}
		update.AttendancePercentage = &attendance
	}

	if req.Backlogs != nil {
		backlogs, err := coerceInt(req.Backlogs)
		if err != nil {
			return apperrors.NewValidationError("Invalid numeric fields")
		}
		update.Backlogs = &backlogs
	}

	if err := s.studentRepo.UpdateFields(ctx, id, update); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) || errors.Is(err, apperrors.ErrNoFieldsToUpdate) {
			return err
		}
		s.logger.Error().Err(err).Int64("studentID", id).Msg("Failed to update student")
		return fmt.Errorf("%w: update failed", apperrors.ErrPersistence)
	}

	s.logger.Info().Int64("studentID", id).Msg("Student updated")
	return nil
}
