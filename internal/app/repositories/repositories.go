package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// pgForeignKeyViolation is the SQLSTATE for foreign key violations
const pgForeignKeyViolation = "23503"

// isForeignKeyViolation reports whether err is a foreign key violation.
// Deletes blocked by dependent rows map to conflicts instead of 500s.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository              *AdminRepository
	OTPRepository                *OTPRepository
	StudentRepository            *StudentRepository
	CompanyRepository            *CompanyRepository
	DepartmentRepository         *DepartmentRepository
	SchoolRepository             *SchoolRepository
	PlacementRepository          *PlacementRepository
	InterviewRoundRepository     *InterviewRoundRepository
	RoundParticipationRepository *RoundParticipationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool, redisClient *redis.Client) *Repositories {
	return &Repositories{
		AdminRepository:              NewAdminRepository(db),
		OTPRepository:                NewOTPRepository(redisClient),
		StudentRepository:            NewStudentRepository(db),
		CompanyRepository:            NewCompanyRepository(db),
		DepartmentRepository:         NewDepartmentRepository(db),
		SchoolRepository:             NewSchoolRepository(db),
		PlacementRepository:          NewPlacementRepository(db),
		InterviewRoundRepository:     NewInterviewRoundRepository(db),
		RoundParticipationRepository: NewRoundParticipationRepository(db),
	}
}
