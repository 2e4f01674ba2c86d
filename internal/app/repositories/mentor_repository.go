package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pravartak/mentorhub/internal/app/models"
	"github.com/pravartak/mentorhub/internal/db"
	"github.com/pravartak/mentorhub/internal/pkg/apperrors"
	"github.com/pravartak/mentorhub/internal/pkg/dberrors"
)

// MentorRepository handles mentor database operations
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{
		db: db,
	}
}

// Create inserts a new mentor inside a single transaction. The email check
// and the insert race under concurrency; the unique constraint settles it
// and the loser surfaces a conflict.
func (r *MentorRepository) Create(ctx context.Context, mentor *models.Mentor) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM mentors WHERE email = $1)`,
			mentor.Email).Scan(&exists); err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return apperrors.ErrMentorEmailAlreadyExists
		}

		err := tx.QueryRow(ctx, `
			INSERT INTO mentors (full_name, email, password, expertise)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			mentor.FullName, mentor.Email, mentor.Password, mentor.Expertise).Scan(&id)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrMentorEmailAlreadyExists
			}
			return fmt.Errorf("error creating mentor: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	mentor.ID = id
	return id, nil
}

// GetByEmail retrieves a mentor by normalized email
func (r *MentorRepository) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	mentor := &models.Mentor{}
	err := r.db.QueryRow(ctx, `
		SELECT id, full_name, email, password, expertise
		FROM mentors
		WHERE email = $1`,
		email).Scan(&mentor.ID, &mentor.FullName, &mentor.Email, &mentor.Password, &mentor.Expertise)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error fetching mentor: %w", err)
	}

	return mentor, nil
}

// Exists checks if a mentor with the given ID exists
func (r *MentorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM mentors WHERE id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking mentor: %w", err)
	}

	return exists, nil
}

// Delete removes a mentor; the students foreign key cascades and removes the
// whole roster. Not exposed over HTTP, used by operational tooling and tests.
func (r *MentorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM mentors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting mentor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}
	return nil
}
