package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pravartak/mentorhub/internal/app/models"
)

// IMentorRepository defines mentor persistence operations
type IMentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// StudentUpdate carries the subset of tracked signals to change. A nil field
// is left untouched.
type StudentUpdate struct {
	CurrentCGPA          *float64
	AttendancePercentage *float64
	FeeStatus            *models.FeeStatus
	Backlogs             *int
}

// IsEmpty reports whether no field was supplied
func (u StudentUpdate) IsEmpty() bool {
	return u.CurrentCGPA == nil && u.AttendancePercentage == nil && u.FeeStatus == nil && u.Backlogs == nil
}

// IStudentRepository defines student persistence operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]models.Student, error)
	UpdateFields(ctx context.Context, id int64, update StudentUpdate) error
}

// Repositories holds all the repository instances
type Repositories struct {
	MentorRepository  *MentorRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		MentorRepository:  NewMentorRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
