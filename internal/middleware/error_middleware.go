package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/pkg/apperrors"
	"github.com/campushq/placementcell/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Unknown errors
// become a generic 500 so database details never reach clients.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password.")

	case errors.Is(err, apperrors.ErrTokenMissing):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Access denied. No token provided.")

	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid or expired token.")

	case errors.Is(err, apperrors.ErrOTPInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidOTP, "Invalid or expired OTP.")

	case errors.Is(err, apperrors.ErrResetNotAllowed):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "OTP verification required before resetting the password.")

	case errors.Is(err, apperrors.ErrAlreadyPlacedInCompany):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, apperrors.ErrAlreadyPlacedInCompany.Error())

	case errors.Is(err, apperrors.ErrAlreadyPlacedElsewhere):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, apperrors.ErrAlreadyPlacedElsewhere.Error())

	case errors.Is(err, apperrors.ErrStudentAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "A student with this roll number already exists.")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already in use.")

	case errors.Is(err, apperrors.ErrCompanyHasPlacements):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Company has placement records and cannot be deleted.")

	case errors.Is(err, apperrors.ErrAdminNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Admin not found.")

	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found.")

	case errors.Is(err, apperrors.ErrCompanyNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Company not found.")

	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Department not found.")

	case errors.Is(err, apperrors.ErrSchoolNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "School not found.")

	case errors.Is(err, apperrors.ErrPlacementNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Placement not found.")

	case errors.Is(err, apperrors.ErrRoundNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Interview round not found.")

	case errors.Is(err, apperrors.ErrParticipationNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Round participation not found.")

	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found."))

	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, messageOr(err, "Conflict."))

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, messageOr(err, "Invalid request."))

	case errors.Is(err, apperrors.ErrEmailSendFailed):
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Failed to send email.")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error.")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// messageOr prefers the wrapped CustomError message when one was attached
func messageOr(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
