package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/services"
	"github.com/campushq/placementcell/internal/middleware"
)

// RoundParticipationController handles round participation endpoints
type RoundParticipationController struct {
	participationService *services.RoundParticipationService
}

// NewRoundParticipationController creates a new RoundParticipationController
func NewRoundParticipationController(participationService *services.RoundParticipationService) *RoundParticipationController {
	return &RoundParticipationController{
		participationService: participationService,
	}
}

// AddRoundParticipant registers a student in an interview round
func (c *RoundParticipationController) AddRoundParticipant(ctx *gin.Context) {
	var req dto.RoundParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	participation, err := c.participationService.Add(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      participation,
		Message:   "Student added to round successfully.",
		Timestamp: time.Now(),
	})
}

// GetAllRoundParticipations lists every participation row
func (c *RoundParticipationController) GetAllRoundParticipations(ctx *gin.Context) {
	participations, err := c.participationService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      participations,
		Timestamp: time.Now(),
	})
}

// GetRoundStudentIDs lists the ids of students in a round
func (c *RoundParticipationController) GetRoundStudentIDs(ctx *gin.Context) {
	roundID, ok := parseIDParam(ctx, "roundId")
	if !ok {
		return
	}

	ids, err := c.participationService.GetStudentIDs(ctx, roundID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]dto.StudentIDRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, dto.StudentIDRow{StudentID: id})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rows,
		Timestamp: time.Now(),
	})
}

// GetRoundStudentEmails lists the contact addresses of a round's participants
func (c *RoundParticipationController) GetRoundStudentEmails(ctx *gin.Context) {
	roundID, ok := parseIDParam(ctx, "roundId")
	if !ok {
		return
	}

	emails, err := c.participationService.GetStudentEmails(ctx, roundID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      emails,
		Timestamp: time.Now(),
	})
}

// GetRoundParticipants lists students participating in a round
func (c *RoundParticipationController) GetRoundParticipants(ctx *gin.Context) {
	roundID, ok := parseIDParam(ctx, "roundId")
	if !ok {
		return
	}

	participants, err := c.participationService.GetParticipants(ctx, roundID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      participants,
		Timestamp: time.Now(),
	})
}

// UpdateRoundParticipantRemarks changes a participant's remarks
func (c *RoundParticipationController) UpdateRoundParticipantRemarks(ctx *gin.Context) {
	var req dto.RoundParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.participationService.UpdateRemarks(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Remarks updated successfully.",
		Timestamp: time.Now(),
	})
}

// DeleteRoundParticipationByID deletes a participation entry by its id
func (c *RoundParticipationController) DeleteRoundParticipationByID(ctx *gin.Context) {
	participationID, ok := parseIDParam(ctx, "participationId")
	if !ok {
		return
	}

	if err := c.participationService.DeleteByID(ctx, participationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Round participation deleted successfully.",
		Timestamp: time.Now(),
	})
}

// RemoveRoundParticipant deletes a participation entry identified by round and student
func (c *RoundParticipationController) RemoveRoundParticipant(ctx *gin.Context) {
	var req dto.RoundStudentPair
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.participationService.Remove(ctx, req.RoundID, req.StudentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Student removed from round successfully.",
		Timestamp: time.Now(),
	})
}
