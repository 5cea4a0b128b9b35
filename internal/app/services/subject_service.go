package services

import (
	"context"
	"strings"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/pkg/apperrors"
)

type subjectCatalog interface {
	GetAll(ctx context.Context) ([]models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) (int64, error)
}

// SubjectService handles the subject catalog.
type SubjectService struct {
	subjects subjectCatalog
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(subjects subjectCatalog) *SubjectService {
	return &SubjectService{subjects: subjects}
}

// GetAllSubjects retrieves the catalog ordered by code.
func (s *SubjectService) GetAllSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.subjects.GetAll(ctx)
}

// CreateSubject adds a catalog entry. Codes are stored uppercased.
func (s *SubjectService) CreateSubject(ctx context.Context, code, name string) (*models.Subject, error) {
	subject := &models.Subject{
		Code: strings.ToUpper(strings.TrimSpace(code)),
		Name: strings.TrimSpace(name),
	}
	if subject.Code == "" || subject.Name == "" {
		return nil, apperrors.ErrValidationFailed
	}

	id, err := s.subjects.Create(ctx, subject)
	if err != nil {
		return nil, err
	}
	subject.ID = id

	return subject, nil
}
