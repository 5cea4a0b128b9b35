package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/app/models/dto"
	"github.com/ellarises/studygroup/internal/db"
	"github.com/ellarises/studygroup/internal/pkg/apperrors"
	"github.com/ellarises/studygroup/internal/pkg/logger"
)

type txRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

type studentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error)
	UpdateFields(ctx context.Context, tx pgx.Tx, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}

type subjectStore interface {
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
}

type courseStore interface {
	GetOrCreate(ctx context.Context, tx pgx.Tx, key models.CourseKey) (int64, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.StudentCourse, error)
}

type scheduleStore interface {
	RemoveCourses(ctx context.Context, tx pgx.Tx, studentID int64, courseIDs []int64) error
	Link(ctx context.Context, tx pgx.Tx, studentID, courseID int64) error
	DeleteByStudent(ctx context.Context, tx pgx.Tx, studentID int64) error
}

type credentialStore interface {
	DeleteByStudent(ctx context.Context, tx pgx.Tx, studentID int64) error
}

// ProfileService handles member profile reads and the transactional
// profile edit.
type ProfileService struct {
	tx          txRunner
	students    studentStore
	subjects    subjectStore
	courses     courseStore
	schedules   scheduleStore
	credentials credentialStore
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	tx txRunner,
	students studentStore,
	subjects subjectStore,
	courses courseStore,
	schedules scheduleStore,
	credentials credentialStore,
) *ProfileService {
	return &ProfileService{
		tx:          tx,
		students:    students,
		subjects:    subjects,
		courses:     courses,
		schedules:   schedules,
		credentials: credentials,
	}
}

// GetProfile retrieves a member profile with their enrolled offerings.
func (s *ProfileService) GetProfile(ctx context.Context, studentID int64) (*dto.ProfileResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	courses, err := s.courses.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{Student: student, Courses: courses}, nil
}

// UpdateProfile applies a profile edit as one transaction: the partial
// field update, the enrollment removals, and the optional course add.
// Either every part lands or none of it does.
func (s *ProfileService) UpdateProfile(ctx context.Context, studentID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	fields := buildUpdateMap(req)
	removeIDs := normalizeCourseIDs(req.RemoveCourseIDs)
	addKey, hasAdd := courseKeyFromRequest(req.AddCourse)

	if hasAdd {
		subject, err := s.subjects.GetByID(ctx, addKey.SubjectID)
		if err != nil {
			return nil, err
		}
		if subject == nil {
			return nil, apperrors.ErrSubjectNotFound
		}
	}

	if len(fields) > 0 || len(removeIDs) > 0 || hasAdd {
		err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if len(fields) > 0 {
				if err := s.students.UpdateFields(ctx, tx, studentID, fields); err != nil {
					return err
				}
			}

			if err := s.schedules.RemoveCourses(ctx, tx, studentID, removeIDs); err != nil {
				return err
			}

			if hasAdd {
				courseID, err := s.courses.GetOrCreate(ctx, tx, addKey)
				if err != nil {
					return err
				}
				if err := s.schedules.Link(ctx, tx, studentID, courseID); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		logger.Debug().
			Int64("studentId", studentID).
			Int("updatedFields", len(fields)).
			Int("removedCourses", len(removeIDs)).
			Bool("addedCourse", hasAdd).
			Msg("Profile updated")
	}

	return s.GetProfile(ctx, studentID)
}

// DeleteProfile removes a member and everything hanging off them in one
// transaction.
func (s *ProfileService) DeleteProfile(ctx context.Context, studentID int64) error {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return apperrors.ErrStudentNotFound
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.schedules.DeleteByStudent(ctx, tx, studentID); err != nil {
			return err
		}
		if err := s.credentials.DeleteByStudent(ctx, tx, studentID); err != nil {
			return err
		}
		return s.students.Delete(ctx, tx, studentID)
	})
}

// buildUpdateMap collects the personal fields the edit actually sets.
// Blank fields are left out so the stored values survive. The age field
// arrives as free text; anything that does not parse as a positive
// number is dropped rather than failing the whole edit.
func buildUpdateMap(req *dto.UpdateProfileRequest) map[string]interface{} {
	fields := make(map[string]interface{})

	set := func(column, value string) {
		if v := strings.TrimSpace(value); v != "" {
			fields[column] = v
		}
	}
	set("stud_first_name", req.FirstName)
	set("stud_last_name", req.LastName)
	set("stud_email", req.Email)
	set("stud_phone_number", req.Phone)
	set("stud_gender", req.Gender)

	if age := strings.TrimSpace(req.Age); age != "" {
		if n, err := strconv.Atoi(age); err == nil && n > 0 {
			fields["stud_age"] = n
		}
	}

	return fields
}

// normalizeCourseIDs deduplicates the removal list and drops non-positive ids.
func normalizeCourseIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

// courseKeyFromRequest converts the optional add-course payload into a
// natural key. A partially filled payload is treated as no add at all.
func courseKeyFromRequest(req *dto.AddCourseRequest) (models.CourseKey, bool) {
	if req == nil {
		return models.CourseKey{}, false
	}

	key := models.CourseKey{
		SubjectID:    req.SubjectID,
		CourseNumber: strings.TrimSpace(req.CourseNumber),
		Term:         models.Term(strings.TrimSpace(req.Term)),
		Year:         req.Year,
	}
	if !key.IsComplete() || !key.Term.IsValid() {
		return models.CourseKey{}, false
	}

	return key, true
}
