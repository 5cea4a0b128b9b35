package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/app/models/dto"
	"github.com/ellarises/studygroup/internal/pkg/apperrors"
	"github.com/ellarises/studygroup/internal/pkg/auth"
)

func newAuthFixture() (*AuthService, *fakeTx, *fakeStudents, *fakeCredentials, *fakeSchedules, *opLog) {
	log := &opLog{}
	tx := &fakeTx{}
	students := newFakeStudents(log)
	subjects := &fakeSubjects{subjects: map[int64]*models.Subject{
		1: {ID: 1, Code: "CS", Name: "Computer Science"},
	}}
	courses := newFakeCourses(log)
	schedules := newFakeSchedules(log)
	credentials := newFakeCredentials(log)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "studygroup-test",
	})

	svc := NewAuthService(tx, students, subjects, courses, schedules, credentials, jwtService)
	return svc, tx, students, credentials, schedules, log
}

func validRegister() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Username:        "ada",
		Password:        "correct-horse",
		PasswordConfirm: "correct-horse",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates member and credentials together", func(t *testing.T) {
		svc, tx, students, credentials, _, _ := newAuthFixture()

		resp, err := svc.Register(ctx, validRegister())
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, 1, tx.began)
		assert.Len(t, students.students, 1)

		cred, err := credentials.GetByUsername(ctx, "ada")
		require.NoError(t, err)
		require.NotNil(t, cred)
		assert.Equal(t, models.RoleParticipant, cred.Role)
		assert.NotEqual(t, "correct-horse", cred.PasswordHash)
	})

	t.Run("password confirmation must match", func(t *testing.T) {
		svc, tx, _, _, _, _ := newAuthFixture()

		req := validRegister()
		req.PasswordConfirm = "something-else"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
		assert.Equal(t, 0, tx.began)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		svc, _, _, _, _, _ := newAuthFixture()

		_, err := svc.Register(ctx, validRegister())
		require.NoError(t, err)
		_, err = svc.Register(ctx, validRegister())
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})

	t.Run("initial course enrollment happens in the same transaction", func(t *testing.T) {
		svc, _, _, _, schedules, _ := newAuthFixture()

		req := validRegister()
		req.AddCourse = &dto.AddCourseRequest{SubjectID: 1, CourseNumber: "101", Term: "Fall", Year: 2025}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Len(t, schedules.links[1], 1)
	})

	t.Run("unknown subject rejects registration", func(t *testing.T) {
		svc, tx, _, _, _, _ := newAuthFixture()

		req := validRegister()
		req.AddCourse = &dto.AddCourseRequest{SubjectID: 42, CourseNumber: "101", Term: "Fall", Year: 2025}
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
		assert.Equal(t, 0, tx.began)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	svc, _, _, _, _, _ := newAuthFixture()
	_, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "ada", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "ada", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "whatever"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
