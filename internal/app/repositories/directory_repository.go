package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ellarises/studygroup/internal/app/models"
)

// DirectoryRepository handles the member directory join queries
type DirectoryRepository struct {
	db *pgxpool.Pool
}

// NewDirectoryRepository creates a new DirectoryRepository
func NewDirectoryRepository(db *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// FetchRows retrieves the flat directory join rows for every student
// except excludeID, optionally restricted by a course filter. Students
// without enrollments come back with nil offering columns unless a
// filter is set, in which case the join drops them.
func (r *DirectoryRepository) FetchRows(ctx context.Context, excludeID int64, filter models.CourseFilter) ([]models.DirectoryRow, error) {
	query := squirrel.Select(
		"s.student_id", "s.stud_first_name", "s.stud_last_name",
		"s.stud_phone_number", "s.stud_email",
		"c.course_id", "sub.subject_code", "sub.subject_name",
		"c.course_number", "c.term", "c.year",
	).
		From("students s").
		LeftJoin("student_schedules ss ON ss.student_id = s.student_id").
		LeftJoin("courses c ON c.course_id = ss.course_id").
		LeftJoin("subjects sub ON sub.subject_id = c.subject_id").
		Where("s.student_id != ?", excludeID).
		OrderBy("s.student_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.SubjectCodePrefix != "" {
		query = query.Where("REPLACE(UPPER(sub.subject_code), ' ', '') LIKE ?", filter.SubjectCodePrefix+"%")
	}
	if filter.CourseNumberPrefix != "" {
		query = query.Where("c.course_number ILIKE ?", filter.CourseNumberPrefix+"%")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var result []models.DirectoryRow
	for rows.Next() {
		var row models.DirectoryRow
		var term *string
		if err := rows.Scan(
			&row.StudentID,
			&row.FirstName,
			&row.LastName,
			&row.Phone,
			&row.Email,
			&row.CourseID,
			&row.SubjectCode,
			&row.SubjectName,
			&row.CourseNumber,
			&term,
			&row.Year,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if term != nil {
			t := models.Term(*term)
			row.Term = &t
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
