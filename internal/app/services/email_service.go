package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
	"github.com/campushq/placementcell/internal/pkg/email"
)

// EmailService dispatches ad-hoc notification emails from the dashboard
type EmailService struct {
	sender email.Service
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(sender email.Service, logger zerolog.Logger) *EmailService {
	return &EmailService{
		sender: sender,
		logger: logger,
	}
}

// Send dispatches the message to every recipient in a single SMTP
// transaction.
func (s *EmailService) Send(ctx context.Context, req *dto.SendEmailRequest) error {
	if err := s.sender.SendMail(req.Email, req.Subject, req.Data); err != nil {
		s.logger.Error().Err(err).
			Int("recipients", len(req.Email)).
			Str("subject", req.Subject).
			Msg("Failed to dispatch email")
		return apperrors.ErrEmailSendFailed
	}

	s.logger.Info().
		Int("recipients", len(req.Email)).
		Str("subject", req.Subject).
		Msg("Email dispatched")

	return nil
}
