package dto

// SendEmailRequest carries recipients, a subject and an HTML body.
// Field names follow the existing dashboard payload, where the body
// travels as "data".
type SendEmailRequest struct {
	Email   []string `json:"email" binding:"required,min=1,dive,email"`
	Subject string   `json:"subject" binding:"required"`
	Data    string   `json:"data" binding:"required"`
}
