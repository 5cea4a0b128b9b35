package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ellarises/studygroup/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// studentColumns is the select list shared by the student queries.
var studentColumns = []string{
	"student_id", "stud_first_name", "stud_last_name", "stud_email",
	"stud_phone_number", "stud_gender", "stud_age", "created_at",
}

// GetByID retrieves a student by ID. Returns nil when no row matches.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := squirrel.Select(studentColumns...).
		From("students").
		Where("student_id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.Gender,
		&student.Age,
		&student.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &student, nil
}

// Create inserts a new student within the given transaction and returns
// the generated id.
func (r *StudentRepository) Create(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error) {
	query := squirrel.Insert("students").
		Columns("stud_first_name", "stud_last_name", "stud_email", "stud_phone_number", "stud_gender", "stud_age").
		Values(student.FirstName, student.LastName, student.Email, student.Phone, student.Gender, student.Age).
		Suffix("RETURNING student_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// UpdateFields applies a partial update to a student within the given
// transaction. The caller supplies only the columns to change; an empty
// map is rejected.
func (r *StudentRepository) UpdateFields(ctx context.Context, tx pgx.Tx, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := squirrel.Update("students").
		SetMap(fields).
		Where("student_id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("no rows affected")
	}

	return nil
}

// Delete removes a student within the given transaction.
func (r *StudentRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	query := squirrel.Delete("students").
		Where("student_id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("no rows affected")
	}

	return nil
}
