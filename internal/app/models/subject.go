package models

// Subject is a catalog entry (e.g. "CS" / "Computer Science").
type Subject struct {
	ID   int64  `json:"id" db:"subject_id"`
	Code string `json:"code" db:"subject_code"`
	Name string `json:"name" db:"subject_name"`
}
