package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController               *AuthController
	StudentController            *StudentController
	CompanyController            *CompanyController
	DepartmentController         *DepartmentController
	SchoolController             *SchoolController
	PlacementController          *PlacementController
	InterviewRoundController     *InterviewRoundController
	RoundParticipationController *RoundParticipationController
	EmailController              *EmailController
}

// NewControllers initializes all controllers
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		AuthController:               NewAuthController(svc.AuthService),
		StudentController:            NewStudentController(svc.StudentService),
		CompanyController:            NewCompanyController(svc.CompanyService),
		DepartmentController:         NewDepartmentController(svc.DepartmentService),
		SchoolController:             NewSchoolController(svc.SchoolService),
		PlacementController:          NewPlacementController(svc.PlacementService),
		InterviewRoundController:     NewInterviewRoundController(svc.InterviewRoundService),
		RoundParticipationController: NewRoundParticipationController(svc.RoundParticipationService),
		EmailController:              NewEmailController(svc.EmailService),
	}
}

// parseIDParam reads a numeric path parameter. On failure it writes a 400
// response and reports false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
