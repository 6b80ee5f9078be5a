package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/repositories"
)

// SchoolService handles school master data operations
type SchoolService struct {
	schoolRepo repositories.ISchoolRepository
	logger     zerolog.Logger
}

// NewSchoolService creates a new SchoolService
func NewSchoolService(schoolRepo repositories.ISchoolRepository, logger zerolog.Logger) *SchoolService {
	return &SchoolService{
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

// Create registers a new school
func (s *SchoolService) Create(ctx context.Context, req *dto.SchoolRequest) (*models.School, error) {
	school := &models.School{SchoolName: req.SchoolName}

	if err := s.schoolRepo.Create(ctx, school); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("schoolId", school.SchoolID).
		Str("schoolName", school.SchoolName).
		Msg("School registered")

	return school, nil
}

// GetByID retrieves a school by ID
func (s *SchoolService) GetByID(ctx context.Context, id int64) (*models.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

// GetAll retrieves all schools
func (s *SchoolService) GetAll(ctx context.Context) ([]*models.School, error) {
	return s.schoolRepo.GetAll(ctx)
}

// Update rewrites a school row
func (s *SchoolService) Update(ctx context.Context, id int64, req *dto.SchoolRequest) (*models.School, error) {
	school := &models.School{
		SchoolID:   id,
		SchoolName: req.SchoolName,
	}

	if err := s.schoolRepo.Update(ctx, school); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("schoolId", id).Msg("School updated")
	return school, nil
}

// Delete removes a school by ID
func (s *SchoolService) Delete(ctx context.Context, id int64) error {
	if err := s.schoolRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("schoolId", id).Msg("School deleted")
	return nil
}
