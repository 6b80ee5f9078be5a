package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/services"
	"github.com/campushq/placementcell/internal/middleware"
)

// InterviewRoundController handles interview round endpoints
type InterviewRoundController struct {
	roundService *services.InterviewRoundService
}

// NewInterviewRoundController creates a new InterviewRoundController
func NewInterviewRoundController(roundService *services.InterviewRoundService) *InterviewRoundController {
	return &InterviewRoundController{
		roundService: roundService,
	}
}

// InsertInterviewRound creates an interview round for a company
func (c *InterviewRoundController) InsertInterviewRound(ctx *gin.Context) {
	var req dto.InterviewRoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	round, err := c.roundService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      round,
		Message:   "Interview round created successfully.",
		Timestamp: time.Now(),
	})
}

// GetInterviewRoundByID retrieves an interview round
func (c *InterviewRoundController) GetInterviewRoundByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	round, err := c.roundService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      round,
		Timestamp: time.Now(),
	})
}

// GetAllInterviewRounds lists all interview rounds
func (c *InterviewRoundController) GetAllInterviewRounds(ctx *gin.Context) {
	rounds, err := c.roundService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rounds,
		Timestamp: time.Now(),
	})
}

// GetInterviewRoundsByCompany lists a company's rounds ordered by number
func (c *InterviewRoundController) GetInterviewRoundsByCompany(ctx *gin.Context) {
	companyID, ok := parseIDParam(ctx, "companyId")
	if !ok {
		return
	}

	rounds, err := c.roundService.GetByCompany(ctx, companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rounds,
		Timestamp: time.Now(),
	})
}

// UpdateInterviewRoundByID rewrites an interview round
func (c *InterviewRoundController) UpdateInterviewRoundByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.InterviewRoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	round, err := c.roundService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      round,
		Message:   "Interview round updated successfully.",
		Timestamp: time.Now(),
	})
}

// DeleteInterviewRoundByID removes an interview round
func (c *InterviewRoundController) DeleteInterviewRoundByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.roundService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Interview round deleted successfully.",
		Timestamp: time.Now(),
	})
}
