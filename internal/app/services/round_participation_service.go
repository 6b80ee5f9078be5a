package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/repositories"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
)

// RoundParticipationService handles student participation in interview rounds
type RoundParticipationService struct {
	participationRepo repositories.IRoundParticipationRepository
	roundRepo         repositories.IInterviewRoundRepository
	studentRepo       repositories.IStudentRepository
	logger            zerolog.Logger
}

// NewRoundParticipationService creates a new RoundParticipationService
func NewRoundParticipationService(
	participationRepo repositories.IRoundParticipationRepository,
	roundRepo repositories.IInterviewRoundRepository,
	studentRepo repositories.IStudentRepository,
	logger zerolog.Logger,
) *RoundParticipationService {
	return &RoundParticipationService{
		participationRepo: participationRepo,
		roundRepo:         roundRepo,
		studentRepo:       studentRepo,
		logger:            logger,
	}
}

// Add registers a student as a participant of a round. Adding the same
// student twice is a conflict.
func (s *RoundParticipationService) Add(ctx context.Context, req *dto.RoundParticipationRequest) (*models.RoundParticipation, error) {
	if _, err := s.roundRepo.GetByID(ctx, req.RoundID); err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	exists, err := s.participationRepo.Exists(ctx, req.RoundID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Student already added to this round.")
	}

	participation := &models.RoundParticipation{
		RoundID:   req.RoundID,
		StudentID: req.StudentID,
		Remarks:   req.Remarks,
	}

	if err := s.participationRepo.Add(ctx, participation); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("roundId", req.RoundID).
		Int64("studentId", req.StudentID).
		Msg("Round participant added")

	return participation, nil
}

// GetAll lists every participation row
func (s *RoundParticipationService) GetAll(ctx context.Context) ([]*models.RoundParticipation, error) {
	return s.participationRepo.GetAll(ctx)
}

// GetStudentIDs lists the ids of students in a round
func (s *RoundParticipationService) GetStudentIDs(ctx context.Context, roundID int64) ([]int64, error) {
	if _, err := s.roundRepo.GetByID(ctx, roundID); err != nil {
		return nil, err
	}
	return s.participationRepo.GetStudentIDsByRound(ctx, roundID)
}

// GetStudentEmails lists the contact addresses of a round's participants
func (s *RoundParticipationService) GetStudentEmails(ctx context.Context, roundID int64) ([]*models.ParticipantEmail, error) {
	if _, err := s.roundRepo.GetByID(ctx, roundID); err != nil {
		return nil, err
	}
	return s.participationRepo.GetStudentEmailsByRound(ctx, roundID)
}

// GetParticipants lists all students taking part in a round
func (s *RoundParticipationService) GetParticipants(ctx context.Context, roundID int64) ([]*models.RoundParticipant, error) {
	if _, err := s.roundRepo.GetByID(ctx, roundID); err != nil {
		return nil, err
	}
	return s.participationRepo.GetParticipants(ctx, roundID)
}

// UpdateRemarks changes the remarks recorded for a participant
func (s *RoundParticipationService) UpdateRemarks(ctx context.Context, req *dto.RoundParticipationRequest) error {
	if err := s.participationRepo.UpdateRemarks(ctx, req.RoundID, req.StudentID, req.Remarks); err != nil {
		return err
	}

	s.logger.Info().
		Int64("roundId", req.RoundID).
		Int64("studentId", req.StudentID).
		Msg("Round participation remarks updated")

	return nil
}

// DeleteByID deletes a participation entry by its id
func (s *RoundParticipationService) DeleteByID(ctx context.Context, participationID int64) error {
	if err := s.participationRepo.DeleteByID(ctx, participationID); err != nil {
		return err
	}

	s.logger.Info().Int64("participationId", participationID).Msg("Round participation deleted")
	return nil
}

// Remove deletes a participation entry
func (s *RoundParticipationService) Remove(ctx context.Context, roundID, studentID int64) error {
	if err := s.participationRepo.Remove(ctx, roundID, studentID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("roundId", roundID).
		Int64("studentId", studentID).
		Msg("Round participant removed")

	return nil
}
