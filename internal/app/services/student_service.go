package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/repositories"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

// StudentService handles student master data operations
type StudentService struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func studentFromRequest(req *dto.StudentRequest) *models.Student {
	return &models.Student{
		Name:              req.Name,
		RollNumber:        req.RollNumber,
		SchoolID:          req.SchoolID,
		DepID:             req.DepID,
		YearOfStudy:       req.YearOfStudy,
		PersonalEmail:     req.PersonalEmail,
		CollegeEmail:      req.CollegeEmail,
		PhoneNumber:       req.PhoneNumber,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		City:              req.City,
		State:             req.State,
		TenthPercentage:   req.TenthPercentage,
		TwelfthPercentage: req.TwelfthPercentage,
		DiplomaPercentage: req.DiplomaPercentage,
		CPIAfter7thSem:    req.CPIAfter7thSem,
		CPIAfter8thSem:    req.CPIAfter8thSem,
		Remark:            req.Remark,
		Category:          req.Category,
		FirstSemSPI:       req.FirstSemSPI,
		SecondSemSPI:      req.SecondSemSPI,
		ThirdSemSPI:       req.ThirdSemSPI,
		FourthFifthSemSPI: req.FourthFifthSemSPI,
		SixthSemSPI:       req.SixthSemSPI,
		SeventhSemSPI:     req.SeventhSemSPI,
		EighthSemSPI:      req.EighthSemSPI,
		NoOfBacklog:       req.NoOfBacklog,
		NoOfActiveBacklog: req.NoOfActiveBacklog,
		Optout:            bool(req.Optout),
	}
}

// Create registers a new student. Roll numbers are unique.
func (s *StudentService) Create(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	exists, err := s.studentRepo.RollNumberExists(ctx, req.RollNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrStudentAlreadyExists
	}

	student := studentFromRequest(req)
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", student.StudentID).
		Str("rollNumber", student.RollNumber).
		Msg("Student registered")

	return student, nil
}

// GetByID retrieves a student by ID
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetByRollNumber retrieves a student by roll number
func (s *StudentService) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	return s.studentRepo.GetByRollNumber(ctx, rollNumber)
}

// GetAll retrieves all students
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// Update rewrites a student row. Changing the roll number to one already
// held by another student is rejected.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, error) {
	current, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RollNumber != current.RollNumber {
		exists, err := s.studentRepo.RollNumberExists(ctx, req.RollNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrStudentAlreadyExists
		}
	}

	student := studentFromRequest(req)
	student.StudentID = id

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student updated")
	return student, nil
}

// DeleteByID removes a student by ID
func (s *StudentService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.studentRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

// DeleteByRollNumber removes a student by roll number
func (s *StudentService) DeleteByRollNumber(ctx context.Context, rollNumber string) error {
	if err := s.studentRepo.DeleteByRollNumber(ctx, rollNumber); err != nil {
		return err
	}

	s.logger.Info().Str("rollNumber", rollNumber).Msg("Student deleted")
	return nil
}
