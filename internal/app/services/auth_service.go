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

// Account roles returned by Login
const (
	RoleMentor  = "mentor"
	RoleStudent = "student"
)

type authService struct {
	mentorRepo  repositories.IMentorRepository
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	mentorRepo repositories.IMentorRepository,
	studentRepo repositories.IStudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		mentorRepo:  mentorRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// RegisterMentor validates and creates a mentor account. Presence is checked
// first and every missing field is reported together; format checks follow in
// a fixed order and short-circuit on the first failure.
func (s *authService) RegisterMentor(ctx context.Context, req *dto.RegisterMentorRequest) (*dto.MentorResponse, error) {
	result := validation.NewResult().
		Require("full_name", req.FullName).
		Require("email", req.Email).
		Require("password", req.Password).
		Require("expertise", req.Expertise)
	if result.HasErrors() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, result.MissingFieldsMessage()).
			WithDetails(map[string]interface{}{"fields": result.Fields()})
	}

	email := validation.NormalizeEmail(req.Email)
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("Invalid email format")
	}

	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters long", validation.PasswordMinLength))
	}

	fullName := strings.TrimSpace(req.FullName)
	if len(fullName) < validation.NameMinLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Full name must be at least %d characters long", validation.NameMinLength))
	}

	expertise := strings.TrimSpace(req.Expertise)
	if len(expertise) < validation.NameMinLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Expertise must be at least %d characters long", validation.NameMinLength))
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	mentor := &models.Mentor{
		FullName:  fullName,
		Email:     email,
		Password:  hashed,
		Expertise: expertise,
	}

	id, err := s.mentorRepo.Create(ctx, mentor)
	if err != nil {
		if errors.Is(err, apperrors.ErrMentorEmailAlreadyExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to create mentor")
		return nil, fmt.Errorf("%w: error creating mentor", apperrors.ErrPersistence)
	}

	s.logger.Info().Int64("mentorID", id).Str("email", email).Msg("Mentor registered")

	return &dto.MentorResponse{
		ID:        id,
		FullName:  fullName,
		Email:     email,
		Expertise: expertise,
	}, nil
}

// Login authenticates either a mentor or a student. Mentors are tried first:
// email uniqueness is per-entity, so an address registered to both always
// resolves to the mentor. Failures are uniform to prevent user enumeration.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := validation.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Email and password required")
	}

	mentor, err := s.mentorRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrMentorNotFound) {
		return nil, fmt.Errorf("%w: error looking up mentor", apperrors.ErrPersistence)
	}
	if mentor != nil && auth.CheckPassword(mentor.Password, req.Password) {
		return s.buildLoginResponse(mentor.ID, email, RoleMentor, mentor.FullName, mentor.Expertise)
	}

	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, fmt.Errorf("%w: error looking up student", apperrors.ErrPersistence)
	}
	if student != nil && student.Password != "" && auth.CheckPassword(student.Password, req.Password) {
		return s.buildLoginResponse(student.ID, email, RoleStudent, student.FullName, "")
	}

	s.logger.Warn().Str("email", email).Msg("Login failed")
	return nil, apperrors.ErrInvalidCredentials
}

func (s *authService) buildLoginResponse(id int64, email, role, fullName, expertise string) (*dto.LoginResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(id, email, role)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		User: dto.UserProfile{
			ID:        id,
			FullName:  fullName,
			Email:     email,
			Role:      role,
			Expertise: expertise,
		},
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
