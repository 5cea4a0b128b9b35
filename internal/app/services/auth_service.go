package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/app/models/dto"
	"github.com/ellarises/studygroup/internal/pkg/apperrors"
	"github.com/ellarises/studygroup/internal/pkg/auth"
	"github.com/ellarises/studygroup/internal/pkg/logger"
)

type authCredentialStore interface {
	Create(ctx context.Context, tx pgx.Tx, cred *models.Credential) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.Credential, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// AuthService handles registration and login.
type AuthService struct {
	tx          txRunner
	students    studentStore
	subjects    subjectStore
	courses     courseStore
	schedules   scheduleStore
	credentials authCredentialStore
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	tx txRunner,
	students studentStore,
	subjects subjectStore,
	courses courseStore,
	schedules scheduleStore,
	credentials authCredentialStore,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		tx:          tx,
		students:    students,
		subjects:    subjects,
		courses:     courses,
		schedules:   schedules,
		credentials: credentials,
		jwtService:  jwtService,
	}
}

// Register creates a member together with their credentials and, when a
// complete course key is supplied, the initial enrollment. Everything
// happens in one transaction.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.ErrPasswordMismatch
	}

	taken, err := s.credentials.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

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

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Gender:    req.Gender,
		Age:       req.Age,
	}
	cred := &models.Credential{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         models.RoleParticipant,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		studentID, err := s.students.Create(ctx, tx, student)
		if err != nil {
			return err
		}
		student.ID = studentID
		cred.StudentID = studentID

		credID, err := s.credentials.Create(ctx, tx, cred)
		if err != nil {
			return err
		}
		cred.ID = credID

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

	logger.Info().
		Int64("studentId", student.ID).
		Str("username", cred.Username).
		Msg("Member registered")

	return s.issueTokens(cred)
}

// Login verifies the credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	cred, err := s.credentials.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if cred == nil || !auth.CheckPassword(cred.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(cred)
}

func (s *AuthService) issueTokens(cred *models.Credential) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(cred)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
