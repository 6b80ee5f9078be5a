package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Service defines the interface for email operations
type Service interface {
	SendMail(recipients []string, subject, htmlBody string) error
	SendOTPEmail(toEmail, otp string) error
}

// SMTPConfig holds configuration for the SMTP relay
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

type smtpService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewService creates a new SMTP-backed email service
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &smtpService{
		config: config,
		logger: logger,
	}
}

// SendMail sends an HTML email to the given recipients through the SMTP relay
func (s *smtpService) SendMail(recipients []string, subject, htmlBody string) error {
	// Without credentials, log instead of sending (development setups)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Strs("recipients", recipients).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           strings.Join(recipients, ","),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var msg strings.Builder
	for key, value := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", key, value)
	}
	msg.WriteString("\r\n" + htmlBody)

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		return s.sendWithTLS(serverAddress, auth, recipients, msg.String())
	}

	if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, recipients, []byte(msg.String())); err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendOTPEmail sends the password-reset OTP to an admin
func (s *smtpService) SendOTPEmail(toEmail, otp string) error {
	subject := "Placement Cell - Password Reset OTP"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Password Reset Request</h2>
				<p>A password reset was requested for your placement cell admin account.</p>
				<p>Your one-time password is: <strong style="font-size: 20px;">%s</strong></p>
				<p>This code expires in 10 minutes and can be used only once.</p>
				<p>If you did not request a password reset, please ignore this email.</p>
			</div>
		</body>
		</html>
	`, otp)

	return s.SendMail([]string{toEmail}, subject, body)
}

func (s *smtpService) sendWithTLS(serverAddress string, auth smtp.Auth, recipients []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range recipients {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}
