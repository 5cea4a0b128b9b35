package models

// Credential holds a student's login identity. One credential row per student.
type Credential struct {
	ID           int64    `json:"id" db:"credential_id"`
	StudentID    int64    `json:"studentId" db:"student_id"`
	Username     string   `json:"username" db:"username"`
	PasswordHash string   `json:"-" db:"password_hash"`
	Role         RoleType `json:"role" db:"role"`
}
