package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/app/services"
	"github.com/campushq/placementcell/internal/middleware"
)

// CompanyController handles company master data endpoints
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// InsertCompany registers a new company
func (c *CompanyController) InsertCompany(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	company, err := c.companyService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      company,
		Message:   "Company registered successfully.",
		Timestamp: time.Now(),
	})
}

// GetCompanyByID retrieves a company by ID
func (c *CompanyController) GetCompanyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// GetAllCompanies lists all companies
func (c *CompanyController) GetAllCompanies(ctx *gin.Context) {
	companies, err := c.companyService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      companies,
		Timestamp: time.Now(),
	})
}

// UpdateCompanyByID rewrites a company row
func (c *CompanyController) UpdateCompanyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	company, err := c.companyService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Message:   "Company updated successfully.",
		Timestamp: time.Now(),
	})
}

// DeleteCompanyByID removes a company without placement records
func (c *CompanyController) DeleteCompanyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Company deleted successfully.",
		Timestamp: time.Now(),
	})
}
