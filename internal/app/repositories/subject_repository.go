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

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// GetAll retrieves all subjects ordered by code.
func (r *SubjectRepository) GetAll(ctx context.Context) ([]models.Subject, error) {
	query := squirrel.Select("subject_id", "subject_code", "subject_name").
		From("subjects").
		OrderBy("subject_code ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Code, &subject.Name); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return subjects, nil
}

// GetByID retrieves a subject by ID. Returns nil when no row matches.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := squirrel.Select("subject_id", "subject_code", "subject_name").
		From("subjects").
		Where("subject_id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var subject models.Subject
	err = r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID, &subject.Code, &subject.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &subject, nil
}

// Create inserts a new subject and returns the generated id.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (int64, error) {
	query := squirrel.Insert("subjects").
		Columns("subject_code", "subject_name").
		Values(subject.Code, subject.Name).
		Suffix("RETURNING subject_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrSubjectAlreadyExists
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}
