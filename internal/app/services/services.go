package services

import (
	"github.com/ellarises/studygroup/internal/app/repositories"
	"github.com/ellarises/studygroup/internal/db"
	"github.com/ellarises/studygroup/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService      *AuthService
	ProfileService   *ProfileService
	DirectoryService *DirectoryService
	SubjectService   *SubjectService
	DonationService  *DonationService
}

// NewServices initializes all services
func NewServices(database *db.PostgresDB, repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(
			database,
			repos.StudentRepository,
			repos.SubjectRepository,
			repos.CourseRepository,
			repos.ScheduleRepository,
			repos.CredentialRepository,
			jwtService,
		),
		ProfileService: NewProfileService(
			database,
			repos.StudentRepository,
			repos.SubjectRepository,
			repos.CourseRepository,
			repos.ScheduleRepository,
			repos.CredentialRepository,
		),
		DirectoryService: NewDirectoryService(repos.DirectoryRepository),
		SubjectService:   NewSubjectService(repos.SubjectRepository),
		DonationService:  NewDonationService(repos.DonationRepository),
	}
}
