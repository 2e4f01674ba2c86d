package services

import (
	"context"

	"github.com/pravartak/mentorhub/internal/app/models/dto"
)

// AuthService handles mentor registration and dual-entity authentication
type AuthService interface {
	RegisterMentor(ctx context.Context, req *dto.RegisterMentorRequest) (*dto.MentorResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// RosterService handles CRUD over students scoped to a mentor
type RosterService interface {
	AddStudent(ctx context.Context, req *dto.AddStudentRequest) (*dto.StudentResponse, error)
	GetStudentsByMentor(ctx context.Context, mentorID int64) ([]dto.StudentResponse, error)
	GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
}

// RiskService maps student signals to classifier features and classifier
// output to a risk verdict
type RiskService interface {
	PredictDropout(ctx context.Context, req *dto.PredictRequest) (*dto.DropoutPredictionResponse, error)
	ScoreRisk(ctx context.Context, req *dto.PredictRequest) (*dto.RiskResponse, error)
	ModelInfo(ctx context.Context) *dto.ModelInfoResponse
}
