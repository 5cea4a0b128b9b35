package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepository handles database operations for student enrollments
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// RemoveCourses deletes the given enrollments of a student within the
// transaction. Course ids not enrolled are simply ignored.
func (r *ScheduleRepository) RemoveCourses(ctx context.Context, tx pgx.Tx, studentID int64, courseIDs []int64) error {
	if len(courseIDs) == 0 {
		return nil
	}

	query := squirrel.Delete("student_schedules").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseIDs}).
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

// Link enrolls a student in a course within the transaction. Already
// existing enrollments are left untouched.
func (r *ScheduleRepository) Link(ctx context.Context, tx pgx.Tx, studentID, courseID int64) error {
	query := squirrel.Insert("student_schedules").
		Columns("student_id", "course_id").
		Values(studentID, courseID).
		Suffix("ON CONFLICT (student_id, course_id) DO NOTHING").
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

// DeleteByStudent removes all enrollments of a student within the transaction.
func (r *ScheduleRepository) DeleteByStudent(ctx context.Context, tx pgx.Tx, studentID int64) error {
	query := squirrel.Delete("student_schedules").
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
