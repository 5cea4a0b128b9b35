package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	SubjectRepository    *SubjectRepository
	CourseRepository     *CourseRepository
	ScheduleRepository   *ScheduleRepository
	CredentialRepository *CredentialRepository
	DirectoryRepository  *DirectoryRepository
	DonationRepository   *DonationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ScheduleRepository:   NewScheduleRepository(db),
		CredentialRepository: NewCredentialRepository(db),
		DirectoryRepository:  NewDirectoryRepository(db),
		DonationRepository:   NewDonationRepository(db),
	}
}
