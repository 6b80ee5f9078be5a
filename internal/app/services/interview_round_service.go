package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/repositories"
)

// InterviewRoundService handles interview round operations
type InterviewRoundService struct {
	roundRepo   repositories.IInterviewRoundRepository
	companyRepo repositories.ICompanyRepository
	logger      zerolog.Logger
}

// NewInterviewRoundService creates a new InterviewRoundService
func NewInterviewRoundService(
	roundRepo repositories.IInterviewRoundRepository,
	companyRepo repositories.ICompanyRepository,
	logger zerolog.Logger,
) *InterviewRoundService {
	return &InterviewRoundService{
		roundRepo:   roundRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func roundFromRequest(req *dto.InterviewRoundRequest) *models.InterviewRound {
	return &models.InterviewRound{
		CompanyID:   req.CompanyID,
		RoundName:   req.RoundName,
		RoundNumber: req.RoundNumber,
		RoundType:   req.RoundType,
		RoundDate:   req.RoundDate,
		Description: req.Description,
	}
}

// Create registers an interview round for an existing company
func (s *InterviewRoundService) Create(ctx context.Context, req *dto.InterviewRoundRequest) (*models.InterviewRound, error) {
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	round := roundFromRequest(req)
	if err := s.roundRepo.Create(ctx, round); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("roundId", round.RoundID).
		Int64("companyId", round.CompanyID).
		Int("roundNumber", round.RoundNumber).
		Msg("Interview round created")

	return round, nil
}

// GetByID retrieves an interview round by ID
func (s *InterviewRoundService) GetByID(ctx context.Context, id int64) (*models.InterviewRound, error) {
	return s.roundRepo.GetByID(ctx, id)
}

// GetAll lists all interview rounds
func (s *InterviewRoundService) GetAll(ctx context.Context) ([]*models.InterviewRound, error) {
	return s.roundRepo.GetAll(ctx)
}

// GetByCompany lists a company's interview rounds ordered by round number
func (s *InterviewRoundService) GetByCompany(ctx context.Context, companyID int64) ([]*models.InterviewRound, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.roundRepo.GetByCompany(ctx, companyID)
}

// Update rewrites an interview round row
func (s *InterviewRoundService) Update(ctx context.Context, id int64, req *dto.InterviewRoundRequest) (*models.InterviewRound, error) {
	if _, err := s.roundRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	round := roundFromRequest(req)
	round.RoundID = id

	if err := s.roundRepo.Update(ctx, round); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("roundId", id).Msg("Interview round updated")
	return round, nil
}

// Delete removes an interview round
func (s *InterviewRoundService) Delete(ctx context.Context, id int64) error {
	if err := s.roundRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("roundId", id).Msg("Interview round deleted")
	return nil
}
