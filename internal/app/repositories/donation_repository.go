package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ellarises/studygroup/internal/app/models"
)

// DonationRepository handles database operations for donations
type DonationRepository struct {
	db *pgxpool.Pool
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create records a donation and returns the generated id.
func (r *DonationRepository) Create(ctx context.Context, donation *models.Donation) (int64, error) {
	query := squirrel.Insert("donations").
		Columns("reference", "donor_name", "donor_email", "amount_cents", "note").
		Values(donation.Reference, donation.DonorName, donation.DonorEmail, donation.AmountCents, donation.Note).
		Suffix("RETURNING donation_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetAll retrieves all donations, newest first.
func (r *DonationRepository) GetAll(ctx context.Context) ([]models.Donation, error) {
	query := squirrel.Select("donation_id", "reference", "donor_name", "donor_email", "amount_cents", "note", "created_at").
		From("donations").
		OrderBy("created_at DESC").
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

	var donations []models.Donation
	for rows.Next() {
		var donation models.Donation
		if err := rows.Scan(
			&donation.ID,
			&donation.Reference,
			&donation.DonorName,
			&donation.DonorEmail,
			&donation.AmountCents,
			&donation.Note,
			&donation.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return donations, nil
}
