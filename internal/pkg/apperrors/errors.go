package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("no token provided")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Admin errors
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailAlreadyExists = errors.New("email already in use")

	// OTP / password reset errors
	ErrOTPInvalid      = errors.New("invalid or expired OTP")
	ErrResetNotAllowed = errors.New("password reset not authorized")
)

// Placement errors
var (
	ErrPlacementNotFound      = errors.New("placement not found")
	ErrAlreadyPlacedInCompany = errors.New("Student already placed in this company.")
	ErrAlreadyPlacedElsewhere = errors.New("Student already placed in another company and cannot be placed again.")
)

// Master data errors
var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentAlreadyExists  = errors.New("student already exists")
	ErrCompanyNotFound       = errors.New("company not found")
	ErrCompanyHasPlacements  = errors.New("company has placement records and cannot be deleted")
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrSchoolNotFound        = errors.New("school not found")
	ErrRoundNotFound         = errors.New("interview round not found")
	ErrParticipationNotFound = errors.New("round participation not found")
)

// Email errors
var (
	ErrEmailSendFailed = errors.New("failed to send email")
)

// CustomError carries a sentinel error plus a human-readable message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
