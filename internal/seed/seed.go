package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/app/repositories"
	"github.com/ellarises/studygroup/internal/db"
	"github.com/ellarises/studygroup/internal/pkg/apperrors"
	"github.com/ellarises/studygroup/internal/pkg/auth"
)

// defaultSubjects is the starter catalog created on first run.
var defaultSubjects = []models.Subject{
	{Code: "CS", Name: "Computer Science"},
	{Code: "MATH", Name: "Mathematics"},
	{Code: "BIO", Name: "Biology"},
	{Code: "CHEM", Name: "Chemistry"},
	{Code: "ENG", Name: "English"},
}

// CreateDefaultData seeds the subject catalog and an admin account if
// they don't exist. Errors are collected so one failed entry doesn't
// stop the rest.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(database.Pool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, subject := range defaultSubjects {
		s := subject
		_, err := repos.SubjectRepository.Create(ctx, &s)
		if err != nil && !errors.Is(err, apperrors.ErrSubjectAlreadyExists) {
			lgr.Error().Err(err).Str("code", s.Code).Msg("Error creating default subject")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createAdminAccount(ctx, database, repos, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func createAdminAccount(ctx context.Context, database *db.PostgresDB, repos *repositories.Repositories, lgr zerolog.Logger) error {
	existing, err := repos.CredentialRepository.GetByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	passwordHash, err := auth.HashPassword("changeme-admin")
	if err != nil {
		return err
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		studentID, err := repos.StudentRepository.Create(ctx, tx, &models.Student{
			FirstName: "Program",
			LastName:  "Admin",
			Email:     "admin@example.org",
		})
		if err != nil {
			return err
		}

		_, err = repos.CredentialRepository.Create(ctx, tx, &models.Credential{
			StudentID:    studentID,
			Username:     "admin",
			PasswordHash: passwordHash,
			Role:         models.RoleAdmin,
		})
		return err
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Msg("Default admin account created")
	return nil
}
