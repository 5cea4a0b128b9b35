package models

// DirectoryRow is one flat row of the directory join
// (students LEFT JOIN schedules LEFT JOIN courses LEFT JOIN subjects).
// Offering columns are nil for a student with no enrollments.
type DirectoryRow struct {
	StudentID    int64
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	CourseID     *int64
	SubjectCode  *string
	SubjectName  *string
	CourseNumber *string
	Term         *Term
	Year         *int
}

// CourseFilter restricts the directory join to offerings matching a
// parsed search query. Empty prefixes match everything.
type CourseFilter struct {
	SubjectCodePrefix  string
	CourseNumberPrefix string
}

// IsZero reports whether the filter restricts nothing.
func (f CourseFilter) IsZero() bool {
	return f.SubjectCodePrefix == "" && f.CourseNumberPrefix == ""
}

// DirectoryEntry is one student in the member directory with their
// enrolled offerings, newest first.
type DirectoryEntry struct {
	StudentID int64           `json:"studentId"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Courses   []StudentCourse `json:"courses"`
}
