package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/pkg/apperrors"
	"github.com/ellarises/studygroup/internal/pkg/dberrors"
)

// CredentialRepository handles database operations for login credentials
type CredentialRepository struct {
	db *pgxpool.Pool
}

// NewCredentialRepository creates a new CredentialRepository
func NewCredentialRepository(db *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts credentials for a student within the transaction.
func (r *CredentialRepository) Create(ctx context.Context, tx pgx.Tx, cred *models.Credential) (int64, error) {
	query := squirrel.Insert("credentials").
		Columns("student_id", "username", "password_hash", "role").
		Values(cred.StudentID, cred.Username, cred.PasswordHash, cred.Role).
		Suffix("RETURNING credential_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "credentials_username_key") {
			return 0, apperrors.ErrUsernameTaken
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByUsername retrieves credentials by username. Returns nil when no
// row matches.
func (r *CredentialRepository) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	query := squirrel.Select("credential_id", "student_id", "username", "password_hash", "role").
		From("credentials").
		Where("username = ?", username).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var cred models.Credential
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&cred.ID,
		&cred.StudentID,
		&cred.Username,
		&cred.PasswordHash,
		&cred.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &cred, nil
}

// UsernameExists checks whether a username is already registered.
func (r *CredentialRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := squirrel.Select("1").
		From("credentials").
		Where("username = ?", username).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// DeleteByStudent removes the credentials of a student within the transaction.
func (r *CredentialRepository) DeleteByStudent(ctx context.Context, tx pgx.Tx, studentID int64) error {
	query := squirrel.Delete("credentials").
		Where("student_id = ?", studentID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}
