package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/repositories"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

// CompanyService handles company master data operations
type CompanyService struct {
	companyRepo repositories.ICompanyRepository
	logger      zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repositories.ICompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Create registers a new company
func (s *CompanyService) Create(ctx context.Context, req *dto.CompanyRequest) (*models.Company, error) {
	company := &models.Company{
		CompanyName:       req.CompanyName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		NoOfStudentPlaced: req.NoOfStudentPlaced,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("companyId", company.CompanyID).
		Str("companyName", company.CompanyName).
		Msg("Company registered")

	return company, nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// GetAll retrieves all companies
func (s *CompanyService) GetAll(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

// Update rewrites a company row
func (s *CompanyService) Update(ctx context.Context, id int64, req *dto.CompanyRequest) (*models.Company, error) {
	company := &models.Company{
		CompanyID:         id,
		CompanyName:       req.CompanyName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		NoOfStudentPlaced: req.NoOfStudentPlaced,
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("companyId", id).Msg("Company updated")
	return company, nil
}

// Delete removes a company. Companies with placement records on file
// cannot be removed.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	hasPlacements, err := s.companyRepo.HasPlacements(ctx, id)
	if err != nil {
		return err
	}
	if hasPlacements {
		return apperrors.ErrCompanyHasPlacements
	}

	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("companyId", id).Msg("Company deleted")
	return nil
}
