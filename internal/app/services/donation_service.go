package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ellarises/studygroup/internal/app/models"
	"github.com/ellarises/studygroup/internal/app/models/dto"
	"github.com/ellarises/studygroup/internal/pkg/apperrors"
)

type donationStore interface {
	Create(ctx context.Context, donation *models.Donation) (int64, error)
	GetAll(ctx context.Context) ([]models.Donation, error)
}

// DonationService records and lists contributions.
type DonationService struct {
	donations donationStore
}

// NewDonationService creates a new DonationService
func NewDonationService(donations donationStore) *DonationService {
	return &DonationService{donations: donations}
}

// RecordDonation stores a contribution under a fresh reference.
func (s *DonationService) RecordDonation(ctx context.Context, req *dto.RecordDonationRequest) (*models.Donation, error) {
	if req.AmountCents <= 0 {
		return nil, apperrors.ErrValidationFailed
	}

	donation := &models.Donation{
		Reference:   uuid.New().String(),
		DonorName:   strings.TrimSpace(req.DonorName),
		DonorEmail:  strings.TrimSpace(req.DonorEmail),
		AmountCents: req.AmountCents,
		Note:        strings.TrimSpace(req.Note),
	}

	id, err := s.donations.Create(ctx, donation)
	if err != nil {
		return nil, err
	}
	donation.ID = id

	return donation, nil
}

// ListDonations retrieves all recorded contributions, newest first.
func (s *DonationService) ListDonations(ctx context.Context) ([]models.Donation, error) {
	return s.donations.GetAll(ctx)
}
