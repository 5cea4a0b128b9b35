package dto

import "github.com/ellarises/studygroup/internal/app/models"

// AddCourseRequest identifies a course offering by its natural key.
type AddCourseRequest struct {
	SubjectID    int64  `json:"subjectId"`
	CourseNumber string `json:"courseNumber"`
	Term         string `json:"term"`
	Year         int    `json:"year"`
}

// UpdateProfileRequest is the profile edit payload. Personal fields left
// empty are not touched; RemoveCourseIDs drops enrollments; AddCourse, when
// complete, enrolls the member in one more offering.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Age       string `json:"age"`

	RemoveCourseIDs []int64           `json:"removeCourseIds"`
	AddCourse       *AddCourseRequest `json:"addCourse,omitempty"`
}

// ProfileResponse is the member profile with the enrolled offerings,
// newest first.
type ProfileResponse struct {
	Student *models.Student        `json:"student"`
	Courses []models.StudentCourse `json:"courses"`
}
