package models

// Course represents one offering of a subject's course in a specific term and year.
// A course is unique on (subject, course number, term, year).
type Course struct {
	ID           int64  `json:"id" db:"course_id"`
	SubjectID    int64  `json:"subjectId" db:"subject_id"`
	CourseNumber string `json:"courseNumber" db:"course_number"`
	Term         Term   `json:"term" db:"term"`
	Year         int    `json:"year" db:"year"`

	// Relations (populated when needed)
	Subject *Subject `json:"subject,omitempty"`
}

// CourseKey is the natural key of a course offering.
type CourseKey struct {
	SubjectID    int64
	CourseNumber string
	Term         Term
	Year         int
}

// IsComplete reports whether every component of the key is present.
// An incomplete key means the caller omitted the optional add-course step.
func (k CourseKey) IsComplete() bool {
	return k.SubjectID > 0 && k.CourseNumber != "" && k.Term != "" && k.Year > 0
}
