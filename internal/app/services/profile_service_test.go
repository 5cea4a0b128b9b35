package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/app/models/dto"
	"github.com/ellarises/studygroup/internal/pkg/apperrors"
)

func newProfileFixture() (*ProfileService, *fakeTx, *fakeStudents, *fakeCourses, *fakeSchedules, *opLog) {
	log := &opLog{}
	tx := &fakeTx{}
	students := newFakeStudents(log)
	subjects := &fakeSubjects{subjects: map[int64]*models.Subject{
		1: {ID: 1, Code: "CS", Name: "Computer Science"},
	}}
	courses := newFakeCourses(log)
	schedules := newFakeSchedules(log)
	credentials := newFakeCredentials(log)

	svc := NewProfileService(tx, students, subjects, courses, schedules, credentials)
	return svc, tx, students, courses, schedules, log
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("only non-empty fields are written", func(t *testing.T) {
		svc, _, students, _, _, _ := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada", LastName: "Lovelace"})

		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{
			FirstName: "Grace",
			Email:     "  ",
			Age:       "27",
		})
		require.NoError(t, err)

		require.Len(t, students.updates, 1)
		assert.Equal(t, map[string]interface{}{
			"stud_first_name": "Grace",
			"stud_age":        27,
		}, students.updates[0])
	})

	t.Run("unparseable age is dropped not fatal", func(t *testing.T) {
		svc, _, students, _, _, _ := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada"})

		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{
			FirstName: "Grace",
			Age:       "twenty",
		})
		require.NoError(t, err)

		require.Len(t, students.updates, 1)
		_, hasAge := students.updates[0]["stud_age"]
		assert.False(t, hasAge)
	})

	t.Run("removals happen before the add", func(t *testing.T) {
		svc, tx, students, _, _, log := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada"})

		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{
			RemoveCourseIDs: []int64{5, 5, -3, 7},
			AddCourse: &dto.AddCourseRequest{
				SubjectID:    1,
				CourseNumber: "101",
				Term:         "Fall",
				Year:         2025,
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, tx.began)
		require.Len(t, log.ops, 3)
		assert.Equal(t, "remove 2 courses for 1", log.ops[0])
		assert.Equal(t, "get-or-create course 100", log.ops[1])
		assert.Equal(t, "link 1 to course 100", log.ops[2])
	})

	t.Run("incomplete course key means no add", func(t *testing.T) {
		svc, _, students, courses, _, _ := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada"})

		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{
			FirstName: "Grace",
			AddCourse: &dto.AddCourseRequest{SubjectID: 1, CourseNumber: "101"},
		})
		require.NoError(t, err)
		assert.Empty(t, courses.byKey)
	})

	t.Run("no-op request skips the transaction", func(t *testing.T) {
		svc, tx, students, _, _, _ := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada"})

		resp, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{
			Email:           "   ",
			RemoveCourseIDs: []int64{0, -1},
		})
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 0, tx.began)
	})

	t.Run("a failing link rolls the whole edit back", func(t *testing.T) {
		svc, tx, students, _, schedules, _ := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada"})
		schedules.linkErr = errors.New("link failed")

		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{
			FirstName: "Grace",
			AddCourse: &dto.AddCourseRequest{
				SubjectID:    1,
				CourseNumber: "101",
				Term:         "Fall",
				Year:         2025,
			},
		})
		require.Error(t, err)
		assert.True(t, tx.rolledBack)
	})

	t.Run("repeating the same add is idempotent", func(t *testing.T) {
		svc, _, students, courses, schedules, _ := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada"})

		add := &dto.AddCourseRequest{SubjectID: 1, CourseNumber: "101", Term: "Fall", Year: 2025}
		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{AddCourse: add})
		require.NoError(t, err)
		_, err = svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{AddCourse: add})
		require.NoError(t, err)

		assert.Len(t, courses.byKey, 1)
		assert.Len(t, schedules.links[1], 1)
	})

	t.Run("same natural key resolves to the same course", func(t *testing.T) {
		svc, _, students, courses, schedules, _ := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada"})
		students.add(&models.Student{FirstName: "Grace"})

		add := &dto.AddCourseRequest{SubjectID: 1, CourseNumber: "101", Term: "Fall", Year: 2025}
		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{AddCourse: add})
		require.NoError(t, err)
		_, err = svc.UpdateProfile(ctx, 2, &dto.UpdateProfileRequest{AddCourse: add})
		require.NoError(t, err)

		assert.Len(t, courses.byKey, 1)
		assert.Equal(t, schedules.links[1], schedules.links[2])
	})

	t.Run("unknown subject rejects the add", func(t *testing.T) {
		svc, tx, students, _, _, _ := newProfileFixture()
		students.add(&models.Student{FirstName: "Ada"})

		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{
			AddCourse: &dto.AddCourseRequest{SubjectID: 99, CourseNumber: "101", Term: "Fall", Year: 2025},
		})
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
		assert.Equal(t, 0, tx.began)
	})

	t.Run("missing student", func(t *testing.T) {
		svc, _, _, _, _, _ := newProfileFixture()

		_, err := svc.UpdateProfile(ctx, 42, &dto.UpdateProfileRequest{FirstName: "Grace"})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestNormalizeCourseIDs(t *testing.T) {
	assert.Nil(t, normalizeCourseIDs(nil))
	assert.Equal(t, []int64{5, 7}, normalizeCourseIDs([]int64{5, 5, 0, -3, 7, 5}))
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()

	svc, _, students, _, _, log := newProfileFixture()
	students.add(&models.Student{FirstName: "Ada"})

	require.NoError(t, svc.DeleteProfile(ctx, 1))
	require.Len(t, log.ops, 3)
	assert.Equal(t, "delete schedules for 1", log.ops[0])
	assert.Equal(t, "delete credentials for 1", log.ops[1])
	assert.Equal(t, "delete student 1", log.ops[2])

	assert.ErrorIs(t, svc.DeleteProfile(ctx, 1), apperrors.ErrStudentNotFound)
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	svc, _, students, courses, _, _ := newProfileFixture()
	students.add(&models.Student{FirstName: "Ada"})
	courses.listing[1] = []models.StudentCourse{
		{CourseID: 100, SubjectCode: "CS", CourseNumber: "101", Term: models.TermFall, Year: 2025},
	}

	resp, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", resp.Student.FirstName)
	assert.Len(t, resp.Courses, 1)

	_, err = svc.GetProfile(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
