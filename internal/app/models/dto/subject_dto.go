package dto

// CreateSubjectRequest adds a subject to the catalog.
type CreateSubjectRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}
