package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/repositories"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
	"github.com/campushq/placementcell/internal/pkg/auth"
	"github.com/campushq/placementcell/internal/pkg/email"
)

const (
	// OTPTTL is how long a password-reset OTP stays valid.
	OTPTTL = 10 * time.Minute

	// ResetGrantTTL is how long a verified-OTP grant allows the password
	// to be replaced.
	ResetGrantTTL = 15 * time.Minute
)

// AuthService handles admin authentication and the OTP reset flow
type AuthService struct {
	adminRepo    repositories.IAdminRepository
	otpRepo      repositories.IOTPRepository
	jwtService   *auth.JWTService
	emailService email.Service
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo repositories.IAdminRepository,
	otpRepo repositories.IOTPRepository,
	jwtService *auth.JWTService,
	emailService email.Service,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		otpRepo:      otpRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
	}
}

// Signup registers a new admin account
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) error {
	exists, err := s.adminRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Email:    req.Email,
		Password: hashed,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info().Str("email", req.Email).Msg("Admin account created")
	return nil
}

// Login verifies credentials and returns an access token.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// ForgotPassword generates an OTP for a registered admin, stores it with a
// TTL and emails it. Any previously issued OTP for the email is replaced.
func (s *AuthService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	exists, err := s.adminRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrAdminNotFound
	}

	otp, err := auth.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := s.otpRepo.StoreOTP(ctx, req.Email, otp, OTPTTL); err != nil {
		return err
	}

	if err := s.emailService.SendOTPEmail(req.Email, otp); err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to send OTP email")
		return apperrors.ErrEmailSendFailed
	}

	s.logger.Info().Str("email", req.Email).Msg("Password reset OTP issued")
	return nil
}

// VerifyOTP consumes the stored OTP for the email and, when it matches,
// issues a short-lived reset grant. A wrong submission still consumes the
// OTP, so the flow must restart from ForgotPassword.
func (s *AuthService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) error {
	stored, err := s.otpRepo.ConsumeOTP(ctx, req.Email)
	if err != nil {
		return err
	}

	if stored != req.OTP {
		return apperrors.ErrOTPInvalid
	}

	if err := s.otpRepo.GrantReset(ctx, req.Email, ResetGrantTTL); err != nil {
		return err
	}

	s.logger.Info().Str("email", req.Email).Msg("OTP verified")
	return nil
}

// ResetPassword replaces the admin password. It requires a reset grant
// produced by a successful VerifyOTP; the grant is consumed here.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if err := s.otpRepo.ConsumeResetGrant(ctx, req.Email); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, req.Email, hashed); err != nil {
		return err
	}

	s.logger.Info().Str("email", req.Email).Msg("Admin password reset")
	return nil
}
