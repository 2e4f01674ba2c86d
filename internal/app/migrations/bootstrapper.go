package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Table definitions. Students carry a cascading foreign key to their mentor,
// so deleting a mentor removes the whole roster; email uniqueness is
// per-entity, a mentor and a student may share an address.
const (
	createMentorsTableSQL = `
	CREATE TABLE IF NOT EXISTS mentors (
		id BIGSERIAL PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		expertise VARCHAR(255) NOT NULL,
		CONSTRAINT uq_mentors_email UNIQUE (email)
	);`

	createStudentsTableSQL = `
	CREATE TABLE IF NOT EXISTS students (
		id BIGSERIAL PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL DEFAULT '',
		account_type VARCHAR(50) NOT NULL,
		parent_name VARCHAR(255) NULL,
		parent_email VARCHAR(255) NULL,
		current_cgpa DOUBLE PRECISION NOT NULL,
		attendance_percentage DOUBLE PRECISION NOT NULL,
		fee_status VARCHAR(50) NOT NULL,
		backlogs INTEGER NOT NULL,
		mentor_id BIGINT NOT NULL,
		CONSTRAINT uq_students_email UNIQUE (email),
		CONSTRAINT fk_students_mentor FOREIGN KEY (mentor_id) REFERENCES mentors(id) ON DELETE CASCADE
	);`

	studentPasswordColumnSQL = `
	SELECT COUNT(*) FROM information_schema.columns
	WHERE table_name = 'students' AND column_name = 'password';`

	addStudentPasswordColumnSQL = `
	ALTER TABLE students ADD COLUMN password VARCHAR(255) NOT NULL DEFAULT '';`
)

// Bootstrapper creates the schema at startup. It runs single-threaded before
// any request is served and is safe to run on every boot.
type Bootstrapper struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewBootstrapper creates a new schema bootstrapper
func NewBootstrapper(db *pgxpool.Pool, logger zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the mentors and students tables if they do not exist
// and patches legacy students tables that predate the credential column.
func (b *Bootstrapper) EnsureSchema(ctx context.Context) error {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start schema transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, createMentorsTableSQL); err != nil {
		return fmt.Errorf("failed to create mentors table: %w", err)
	}

	if _, err := tx.Exec(ctx, createStudentsTableSQL); err != nil {
		return fmt.Errorf("failed to create students table: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}

	b.patchLegacyStudentsTable(ctx)

	return nil
}

// patchLegacyStudentsTable adds the password column to students tables
// created before credentials existed. Introspection failures are logged and
// swallowed: if the column really is missing, the next insert surfaces a
// clearer error than aborting the whole bootstrap would.
func (b *Bootstrapper) patchLegacyStudentsTable(ctx context.Context) {
	var count int
	if err := b.db.QueryRow(ctx, studentPasswordColumnSQL).Scan(&count); err != nil {
		b.logger.Warn().Err(err).Msg("Could not introspect students table, skipping legacy column patch")
		return
	}

	if count > 0 {
		return
	}

	if _, err := b.db.Exec(ctx, addStudentPasswordColumnSQL); err != nil {
		b.logger.Warn().Err(err).Msg("Failed to add password column to legacy students table")
		return
	}

	b.logger.Info().Msg("Added password column to legacy students table")
}
