package services

import (
	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/repositories"
	"github.com/campushq/placementcell/internal/pkg/auth"
	"github.com/campushq/placementcell/internal/pkg/email"
)

// Services holds all the service instances
type Services struct {
	AuthService               *AuthService
	StudentService            *StudentService
	CompanyService            *CompanyService
	DepartmentService         *DepartmentService
	SchoolService             *SchoolService
	PlacementService          *PlacementService
	InterviewRoundService     *InterviewRoundService
	RoundParticipationService *RoundParticipationService
	EmailService              *EmailService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailSender email.Service,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.AdminRepository,
			repos.OTPRepository,
			jwtService,
			emailSender,
			logger,
		),
		StudentService: NewStudentService(repos.StudentRepository, logger),
		CompanyService: NewCompanyService(repos.CompanyRepository, logger),
		DepartmentService: NewDepartmentService(
			repos.DepartmentRepository,
			repos.SchoolRepository,
			logger,
		),
		SchoolService: NewSchoolService(repos.SchoolRepository, logger),
		PlacementService: NewPlacementService(
			repos.PlacementRepository,
			repos.StudentRepository,
			repos.CompanyRepository,
			logger,
		),
		InterviewRoundService: NewInterviewRoundService(
			repos.InterviewRoundRepository,
			repos.CompanyRepository,
			logger,
		),
		RoundParticipationService: NewRoundParticipationService(
			repos.RoundParticipationRepository,
			repos.InterviewRoundRepository,
			repos.StudentRepository,
			logger,
		),
		EmailService: NewEmailService(emailSender, logger),
	}
}
