package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/repositories"
)

// DepartmentService handles department master data operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
	schoolRepo     repositories.ISchoolRepository
	logger         zerolog.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(
	departmentRepo repositories.IDepartmentRepository,
	schoolRepo repositories.ISchoolRepository,
	logger zerolog.Logger,
) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		schoolRepo:     schoolRepo,
		logger:         logger,
	}
}

// Create registers a new department under an existing school
func (s *DepartmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*models.Department, error) {
	if _, err := s.schoolRepo.GetByID(ctx, req.SchoolID); err != nil {
		return nil, err
	}

	department := &models.Department{
		Name:             req.Name,
		SchoolID:         req.SchoolID,
		HeadOfDepartment: req.HeadOfDepartment,
		Description:      req.Description,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("depId", department.DepID).
		Str("name", department.Name).
		Msg("Department registered")

	return department, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// GetAll retrieves all departments
func (s *DepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// Update rewrites a department row
func (s *DepartmentService) Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*models.Department, error) {
	if _, err := s.schoolRepo.GetByID(ctx, req.SchoolID); err != nil {
		return nil, err
	}

	department := &models.Department{
		DepID:            id,
		Name:             req.Name,
		SchoolID:         req.SchoolID,
		HeadOfDepartment: req.HeadOfDepartment,
		Description:      req.Description,
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("depId", id).Msg("Department updated")
	return department, nil
}

// Delete removes a department by ID
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("depId", id).Msg("Department deleted")
	return nil
}
