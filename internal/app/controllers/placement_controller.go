package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/services"
	"github.com/campushq/placementcell/internal/middleware"
)

// PlacementController handles placement record endpoints
type PlacementController struct {
	placementService *services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService) *PlacementController {
	return &PlacementController{
		placementService: placementService,
	}
}

// InsertPlacement records a new placement
func (c *PlacementController) InsertPlacement(ctx *gin.Context) {
	var req dto.PlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	placement, err := c.placementService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      placement,
		Message:   "Placement recorded successfully.",
		Timestamp: time.Now(),
	})
}

// GetPlacementByID retrieves a single placement row
func (c *PlacementController) GetPlacementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	placement, err := c.placementService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// GetAllPlacements lists all placement rows
func (c *PlacementController) GetAllPlacements(ctx *gin.Context) {
	placements, err := c.placementService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placements,
		Timestamp: time.Now(),
	})
}

// GetPlacementsByCompany lists a company's placements with student details
func (c *PlacementController) GetPlacementsByCompany(ctx *gin.Context) {
	companyID, ok := parseIDParam(ctx, "companyId")
	if !ok {
		return
	}

	placements, err := c.placementService.GetByCompany(ctx, companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placements,
		Timestamp: time.Now(),
	})
}

// GetAllPlacementDetails lists placements joined with student and company data
func (c *PlacementController) GetAllPlacementDetails(ctx *gin.Context) {
	details, err := c.placementService.GetAllDetails(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      details,
		Timestamp: time.Now(),
	})
}

// GetPlacedStudentIDs lists ids of all placed students
func (c *PlacementController) GetPlacedStudentIDs(ctx *gin.Context) {
	ids, err := c.placementService.GetPlacedStudentIDs(ctx)
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

// GetYearWisePlacements aggregates placed students by year of study
func (c *PlacementController) GetYearWisePlacements(ctx *gin.Context) {
	counts, err := c.placementService.GetYearWiseCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      counts,
		Timestamp: time.Now(),
	})
}

// GetDepartmentWisePlacements aggregates placed students by department
func (c *PlacementController) GetDepartmentWisePlacements(ctx *gin.Context) {
	counts, err := c.placementService.GetDepartmentWiseCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      counts,
		Timestamp: time.Now(),
	})
}

// GetCoreNonCorePlacements aggregates placements by classification
func (c *PlacementController) GetCoreNonCorePlacements(ctx *gin.Context) {
	counts, err := c.placementService.GetCoreNonCoreCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      counts,
		Timestamp: time.Now(),
	})
}

// UpdatePlacementByID rewrites a placement record
func (c *PlacementController) UpdatePlacementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	placement, err := c.placementService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placement,
		Message:   "Placement updated successfully.",
		Timestamp: time.Now(),
	})
}

// DeletePlacementByID removes a placement record
func (c *PlacementController) DeletePlacementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.placementService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Placement deleted successfully.",
		Timestamp: time.Now(),
	})
}
