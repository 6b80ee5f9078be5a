package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/services"
	"github.com/campushq/placementcell/internal/middleware"
)

// EmailController handles notification email dispatch
type EmailController struct {
	emailService *services.EmailService
}

// NewEmailController creates a new EmailController
func NewEmailController(emailService *services.EmailService) *EmailController {
	return &EmailController{
		emailService: emailService,
	}
}

// SendEmail dispatches an HTML email to the listed recipients
func (c *EmailController) SendEmail(ctx *gin.Context) {
	var req dto.SendEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.emailService.Send(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Email sent successfully.",
		Timestamp: time.Now(),
	})
}
