package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/repositories"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

// PlacementService handles placement record operations
type PlacementService struct {
	placementRepo repositories.IPlacementRepository
	studentRepo   repositories.IStudentRepository
	companyRepo   repositories.ICompanyRepository
	logger        zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(
	placementRepo repositories.IPlacementRepository,
	studentRepo repositories.IStudentRepository,
	companyRepo repositories.ICompanyRepository,
	logger zerolog.Logger,
) *PlacementService {
	return &PlacementService{
		placementRepo: placementRepo,
		studentRepo:   studentRepo,
		companyRepo:   companyRepo,
		logger:        logger,
	}
}

func placementFromRequest(req *dto.PlacementRequest) *models.Placement {
	var salary float64
	if req.Salary != nil {
		salary = *req.Salary
	}
	return &models.Placement{
		StudentID:     req.StudentID,
		CompanyID:     req.CompanyID,
		Position:      req.Position,
		Location:      req.Location,
		Salary:        salary,
		PlacementDate: req.PlacementDate,
		OfferType:     req.OfferType,
		OfferLetter:   bool(req.OfferLetter),
		CoreNonCore:   req.CoreNonCore,
	}
}

// checkPlacementConflicts applies the one-placement-per-student rule. The
// same-company check runs first so its more specific message wins. Pass
// excludeID=0 for inserts.
func (s *PlacementService) checkPlacementConflicts(ctx context.Context, studentID, companyID, excludeID int64) error {
	inCompany, err := s.placementRepo.ExistsForStudentAndCompany(ctx, studentID, companyID, excludeID)
	if err != nil {
		return err
	}
	if inCompany {
		return apperrors.ErrAlreadyPlacedInCompany
	}

	anywhere, err := s.placementRepo.ExistsForStudent(ctx, studentID, excludeID)
	if err != nil {
		return err
	}
	if anywhere {
		return apperrors.ErrAlreadyPlacedElsewhere
	}

	return nil
}

// Create records a placement after verifying the student and company exist
// and the student holds no other placement.
func (s *PlacementService) Create(ctx context.Context, req *dto.PlacementRequest) (*models.Placement, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	if err := s.checkPlacementConflicts(ctx, req.StudentID, req.CompanyID, 0); err != nil {
		return nil, err
	}

	placement := placementFromRequest(req)
	if err := s.placementRepo.Create(ctx, placement); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("placementId", placement.PlacementID).
		Int64("studentId", placement.StudentID).
		Int64("companyId", placement.CompanyID).
		Msg("Placement recorded")

	return placement, nil
}

// GetByID retrieves a single placement
func (s *PlacementService) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	return s.placementRepo.GetByID(ctx, id)
}

// GetAll retrieves all placement rows
func (s *PlacementService) GetAll(ctx context.Context) ([]*models.Placement, error) {
	return s.placementRepo.GetAll(ctx)
}

// GetByCompany lists a company's placements with student identification
func (s *PlacementService) GetByCompany(ctx context.Context, companyID int64) ([]*models.CompanyPlacement, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.placementRepo.GetByCompanyID(ctx, companyID)
}

// GetAllDetails lists all placements joined with student and company data
func (s *PlacementService) GetAllDetails(ctx context.Context) ([]*models.PlacementDetail, error) {
	return s.placementRepo.GetAllDetails(ctx)
}

// GetPlacedStudentIDs lists the ids of all placed students
func (s *PlacementService) GetPlacedStudentIDs(ctx context.Context) ([]int64, error) {
	return s.placementRepo.GetAllStudentIDs(ctx)
}

// GetYearWiseCounts aggregates placed students by year of study
func (s *PlacementService) GetYearWiseCounts(ctx context.Context) ([]*models.YearWiseCount, error) {
	return s.placementRepo.GetYearWiseCounts(ctx)
}

// GetDepartmentWiseCounts aggregates placed students by department
func (s *PlacementService) GetDepartmentWiseCounts(ctx context.Context) ([]*models.DepartmentWiseCount, error) {
	return s.placementRepo.GetDepartmentWiseCounts(ctx)
}

// GetCoreNonCoreCounts aggregates placements by core/non-core classification
func (s *PlacementService) GetCoreNonCoreCounts(ctx context.Context) ([]*models.CoreNonCoreCount, error) {
	return s.placementRepo.GetCoreNonCoreCounts(ctx)
}

// Update rewrites a placement. The conflict checks re-run against the new
// student/company pair, excluding the row being updated.
func (s *PlacementService) Update(ctx context.Context, id int64, req *dto.PlacementRequest) (*models.Placement, error) {
	if _, err := s.placementRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	if err := s.checkPlacementConflicts(ctx, req.StudentID, req.CompanyID, id); err != nil {
		return nil, err
	}

	placement := placementFromRequest(req)
	placement.PlacementID = id

	if err := s.placementRepo.Update(ctx, placement); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("placementId", id).Msg("Placement updated")
	return placement, nil
}

// Delete removes a placement record
func (s *PlacementService) Delete(ctx context.Context, id int64) error {
	if err := s.placementRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("placementId", id).Msg("Placement deleted")
	return nil
}
