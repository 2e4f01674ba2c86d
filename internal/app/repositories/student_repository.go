package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pravartak/mentorhub/internal/app/models"
	"github.com/pravartak/mentorhub/internal/db"
	"github.com/pravartak/mentorhub/internal/pkg/apperrors"
	"github.com/pravartak/mentorhub/internal/pkg/dberrors"
)

const studentColumns = `id, full_name, email, password, account_type, parent_name, parent_email,
	current_cgpa, attendance_percentage, fee_status, backlogs, mentor_id`

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.Password, &s.AccountType, &s.ParentName, &s.ParentEmail,
		&s.CurrentCGPA, &s.AttendancePercentage, &s.FeeStatus, &s.Backlogs, &s.MentorID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new student inside a single transaction: the mentor must
// exist, the email must be free, and the inserted row is read back so the
// caller returns exactly what was stored. Rollback on any failure.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	var created *models.Student
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var mentorExists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM mentors WHERE id = $1)`,
			student.MentorID).Scan(&mentorExists); err != nil {
			return fmt.Errorf("error checking mentor: %w", err)
		}
		if !mentorExists {
			return apperrors.ErrMentorNotFound
		}

		var emailExists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`,
			student.Email).Scan(&emailExists); err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if emailExists {
			return apperrors.ErrStudentEmailAlreadyExists
		}

		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO students (
				full_name, email, password, account_type, parent_name, parent_email,
				current_cgpa, attendance_percentage, fee_status, backlogs, mentor_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
			student.FullName, student.Email, student.Password, student.AccountType,
			student.ParentName, student.ParentEmail, student.CurrentCGPA,
			student.AttendancePercentage, student.FeeStatus, student.Backlogs,
			student.MentorID).Scan(&id)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrStudentEmailAlreadyExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrMentorNotFound
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		// Re-read inside the same transaction so the response reflects
		// stored values, including column defaults
		row, err := scanStudent(tx.QueryRow(ctx,
			`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
		if err != nil {
			return fmt.Errorf("error reading created student: %w", err)
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, err := scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	return s, nil
}

// GetByEmail retrieves a student by normalized email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	s, err := scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	return s, nil
}

// ListByMentor returns a mentor's roster in storage order
func (r *StudentRepository) ListByMentor(ctx context.Context, mentorID int64) ([]models.Student, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+` FROM students WHERE mentor_id = $1 ORDER BY id`, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		s := models.Student{}
		err := rows.Scan(
			&s.ID, &s.FullName, &s.Email, &s.Password, &s.AccountType, &s.ParentName, &s.ParentEmail,
			&s.CurrentCGPA, &s.AttendancePercentage, &s.FeeStatus, &s.Backlogs, &s.MentorID)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	return students, nil
}

// UpdateFields applies a partial update of tracked signals as one UPDATE
// statement covering only the supplied fields. The student must exist.
func (r *StudentRepository) UpdateFields(ctx context.Context, id int64, update StudentUpdate) error {
	if update.IsEmpty() {
		return apperrors.ErrNoFieldsToUpdate
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`,
			id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking student: %w", err)
		}
		if !exists {
			return apperrors.ErrStudentNotFound
		}

		setClauses := make([]string, 0, 4)
		args := make([]interface{}, 0, 5)
		arg := 1

		if update.CurrentCGPA != nil {
			setClauses = append(setClauses, fmt.Sprintf("current_cgpa = $%d", arg))
			args = append(args, *update.CurrentCGPA)
			arg++
		}
		if update.AttendancePercentage != nil {
			setClauses = append(setClauses, fmt.Sprintf("attendance_percentage = $%d", arg))
			args = append(args, *update.AttendancePercentage)
			arg++
		}
		if update.FeeStatus != nil {
			setClauses = append(setClauses, fmt.Sprintf("fee_status = $%d", arg))
			args = append(args, *update.FeeStatus)
			arg++
		}
		if update.Backlogs != nil {
			setClauses = append(setClauses, fmt.Sprintf("backlogs = $%d", arg))
			args = append(args, *update.Backlogs)
			arg++
		}

		args = append(args, id)
		sql := fmt.Sprintf("UPDATE students SET %s WHERE id = $%d", strings.Join(setClauses, ", "), arg)

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error updating student: %w", err)
		}
		return nil
	})
}
