package models

import "time"

// Donation is a recorded contribution to the program.
type Donation struct {
	ID          int64     `json:"id" db:"donation_id"`
	Reference   string    `json:"reference" db:"reference"`
	DonorName   string    `json:"donorName" db:"donor_name"`
	DonorEmail  string    `json:"donorEmail" db:"donor_email"`
	AmountCents int64     `json:"amountCents" db:"amount_cents"`
	Note        string    `json:"note,omitempty" db:"note"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
