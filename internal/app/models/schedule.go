package models

// Schedule links a student to a course offering. A given (student, course)
// pair appears at most once.
type Schedule struct {
	ID        int64 `json:"id" db:"schedule_id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	CourseID  int64 `json:"courseId" db:"course_id"`
}

// StudentCourse is a course offering as seen from a student's schedule,
// joined with its subject for display.
type StudentCourse struct {
	CourseID     int64  `json:"courseId" db:"course_id"`
	SubjectCode  string `json:"subjectCode" db:"subject_code"`
	SubjectName  string `json:"subjectName" db:"subject_name"`
	CourseNumber string `json:"courseNumber" db:"course_number"`
	Term         Term   `json:"term" db:"term"`
	Year         int    `json:"year" db:"year"`
}

// RecencyScore ranks an offering for newest-first ordering.
func (c StudentCourse) RecencyScore() int {
	return c.Year*10 + c.Term.Rank()
}
