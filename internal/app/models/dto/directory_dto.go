package dto

import "github.com/ellarises/studygroup/internal/app/models"

// DirectoryResponse is the grouped member directory for a search.
type DirectoryResponse struct {
	Search  string                   `json:"search"`
	Members []*models.DirectoryEntry `json:"members"`
}
