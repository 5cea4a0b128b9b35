package dto

// RecordDonationRequest records a contribution.
type RecordDonationRequest struct {
	DonorName   string `json:"donorName" binding:"required"`
	DonorEmail  string `json:"donorEmail" binding:"required,email"`
	AmountCents int64  `json:"amountCents" binding:"required,gt=0"`
	Note        string `json:"note"`
}
