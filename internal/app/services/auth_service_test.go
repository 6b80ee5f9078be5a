package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/placementcell/internal/app/models"
	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
	"github.com/campushq/placementcell/internal/pkg/auth"
)

type mockAdminRepo struct {
	admins    map[string]*models.Admin
	passwords map[string]string
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{
		admins:    map[string]*models.Admin{},
		passwords: map[string]string{},
	}
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = int64(len(m.admins) + 1)
	m.admins[admin.Email] = admin
	return nil
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin, ok := m.admins[email]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return admin, nil
}

func (m *mockAdminRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := m.admins[email]
	return ok, nil
}

func (m *mockAdminRepo) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	admin, ok := m.admins[email]
	if !ok {
		return apperrors.ErrAdminNotFound
	}
	admin.Password = hashedPassword
	return nil
}

type mockOTPRepo struct {
	otps   map[string]string
	grants map[string]bool
}

func newMockOTPRepo() *mockOTPRepo {
	return &mockOTPRepo{
		otps:   map[string]string{},
		grants: map[string]bool{},
	}
}

func (m *mockOTPRepo) StoreOTP(ctx context.Context, email, otp string, ttl time.Duration) error {
	m.otps[email] = otp
	return nil
}

func (m *mockOTPRepo) ConsumeOTP(ctx context.Context, email string) (string, error) {
	otp, ok := m.otps[email]
	if !ok {
		return "", apperrors.ErrOTPInvalid
	}
	delete(m.otps, email)
	return otp, nil
}

func (m *mockOTPRepo) GrantReset(ctx context.Context, email string, ttl time.Duration) error {
	m.grants[email] = true
	return nil
}

func (m *mockOTPRepo) ConsumeResetGrant(ctx context.Context, email string) error {
	if !m.grants[email] {
		return apperrors.ErrResetNotAllowed
	}
	delete(m.grants, email)
	return nil
}

type mockEmailSender struct {
	sentOTPs   []string
	recipients []string
	failNext   bool
}

func (m *mockEmailSender) SendMail(recipients []string, subject, htmlBody string) error {
	if m.failNext {
		return assert.AnError
	}
	m.recipients = append(m.recipients, recipients...)
	return nil
}

func (m *mockEmailSender) SendOTPEmail(toEmail, otp string) error {
	if m.failNext {
		return assert.AnError
	}
	m.recipients = append(m.recipients, toEmail)
	m.sentOTPs = append(m.sentOTPs, otp)
	return nil
}

func newTestAuthService() (*AuthService, *mockAdminRepo, *mockOTPRepo, *mockEmailSender) {
	adminRepo := newMockAdminRepo()
	otpRepo := newMockOTPRepo()
	sender := &mockEmailSender{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "placementcell.test",
	})

	svc := NewAuthService(adminRepo, otpRepo, jwtService, sender, zerolog.Nop())
	return svc, adminRepo, otpRepo, sender
}

func TestSignup(t *testing.T) {
	svc, adminRepo, _, _ := newTestAuthService()
	ctx := context.Background()

	err := svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"})
	require.NoError(t, err)

	admin := adminRepo.admins["admin@example.edu"]
	require.NotNil(t, admin)
	// Password must be stored hashed
	assert.NotEqual(t, "password123", admin.Password)
	assert.True(t, auth.CheckPassword(admin.Password, "password123"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))

	err := svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "otherpassword"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))

	token, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))

	_, wrongPassword := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.edu", Password: "wrong"})
	_, unknownEmail := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.edu", Password: "password123"})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
}

func TestForgotPassword(t *testing.T) {
	svc, _, otpRepo, sender := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))
	require.NoError(t, svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "admin@example.edu"}))

	require.Len(t, sender.sentOTPs, 1)
	assert.Len(t, sender.sentOTPs[0], auth.OTPLength)
	// The mailed OTP is what got stored
	assert.Equal(t, sender.sentOTPs[0], otpRepo.otps["admin@example.edu"])
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _, _, sender := newTestAuthService()

	err := svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "nobody@example.edu"})
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
	assert.Empty(t, sender.sentOTPs)
}

func TestForgotPasswordMailFailure(t *testing.T) {
	svc, _, _, sender := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))

	sender.failNext = true
	err := svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "admin@example.edu"})
	assert.ErrorIs(t, err, apperrors.ErrEmailSendFailed)
}

func TestVerifyOTP(t *testing.T) {
	svc, _, otpRepo, sender := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))
	require.NoError(t, svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "admin@example.edu"}))

	err := svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "admin@example.edu", OTP: sender.sentOTPs[0]})
	require.NoError(t, err)
	assert.True(t, otpRepo.grants["admin@example.edu"])
}

func TestVerifyOTPWrongCodeConsumesOTP(t *testing.T) {
	svc, _, otpRepo, sender := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))
	require.NoError(t, svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "admin@example.edu"}))

	err := svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "admin@example.edu", OTP: "000000"})
	assert.ErrorIs(t, err, apperrors.ErrOTPInvalid)
	assert.False(t, otpRepo.grants["admin@example.edu"])

	// Retrying with the right code after a failed attempt also fails:
	// the OTP was consumed and the flow must restart
	err = svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "admin@example.edu", OTP: sender.sentOTPs[0]})
	assert.ErrorIs(t, err, apperrors.ErrOTPInvalid)
}

func TestResetPassword(t *testing.T) {
	svc, adminRepo, _, sender := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))
	require.NoError(t, svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "admin@example.edu"}))
	require.NoError(t, svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "admin@example.edu", OTP: sender.sentOTPs[0]}))

	require.NoError(t, svc.ResetPassword(ctx, &dto.ResetPasswordRequest{Email: "admin@example.edu", Password: "newpassword9"}))

	admin := adminRepo.admins["admin@example.edu"]
	assert.True(t, auth.CheckPassword(admin.Password, "newpassword9"))
	assert.False(t, auth.CheckPassword(admin.Password, "password123"))
}

func TestResetPasswordWithoutVerification(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))

	err := svc.ResetPassword(ctx, &dto.ResetPasswordRequest{Email: "admin@example.edu", Password: "newpassword9"})
	assert.ErrorIs(t, err, apperrors.ErrResetNotAllowed)
}

func TestResetGrantIsSingleUse(t *testing.T) {
	svc, _, _, sender := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.SignupRequest{Email: "admin@example.edu", Password: "password123"}))
	require.NoError(t, svc.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "admin@example.edu"}))
	require.NoError(t, svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "admin@example.edu", OTP: sender.sentOTPs[0]}))

	require.NoError(t, svc.ResetPassword(ctx, &dto.ResetPasswordRequest{Email: "admin@example.edu", Password: "newpassword9"}))

	err := svc.ResetPassword(ctx, &dto.ResetPasswordRequest{Email: "admin@example.edu", Password: "anotherpass1"})
	assert.ErrorIs(t, err, apperrors.ErrResetNotAllowed)
}
