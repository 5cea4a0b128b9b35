package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ellarises/studygroup/internal/app/models"
)

// CourseRepository handles database operations for course offerings
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// GetOrCreate resolves a course offering by its natural key, inserting
// it when absent. The upsert keeps concurrent callers from racing on
// the same key; the no-op DO UPDATE makes RETURNING yield the id on
// both paths.
func (r *CourseRepository) GetOrCreate(ctx context.Context, tx pgx.Tx, key models.CourseKey) (int64, error) {
	query := squirrel.Insert("courses").
		Columns("subject_id", "course_number", "term", "year").
		Values(key.SubjectID, key.CourseNumber, key.Term, key.Year).
		Suffix("ON CONFLICT (subject_id, course_number, term, year) DO UPDATE SET subject_id = EXCLUDED.subject_id RETURNING course_id").
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

// GetByID retrieves a course offering by ID. Returns nil when no row matches.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := squirrel.Select("course_id", "subject_id", "course_number", "term", "year").
		From("courses").
		Where("course_id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID,
		&course.SubjectID,
		&course.CourseNumber,
		&course.Term,
		&course.Year,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &course, nil
}

// ListByStudent retrieves the enrolled courses of a student joined with
// their subject, most recent offerings first.
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error) {
	query := squirrel.Select(
		"c.course_id", "sub.subject_code", "sub.subject_name",
		"c.course_number", "c.term", "c.year",
	).
		From("student_schedules ss").
		Join("courses c ON c.course_id = ss.course_id").
		Join("subjects sub ON sub.subject_id = c.subject_id").
		Where("ss.student_id = ?", studentID).
		OrderBy(
			"c.year DESC",
			"CASE c.term WHEN 'Fall' THEN 4 WHEN 'Winter' THEN 3 WHEN 'Spring' THEN 2 WHEN 'Summer' THEN 1 ELSE 0 END DESC",
			"sub.subject_code ASC",
		).
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

	var courses []models.StudentCourse
	for rows.Next() {
		var course models.StudentCourse
		if err := rows.Scan(
			&course.CourseID,
			&course.SubjectCode,
			&course.SubjectName,
			&course.CourseNumber,
			&course.Term,
			&course.Year,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}
