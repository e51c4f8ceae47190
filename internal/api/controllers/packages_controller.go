package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type PackagesController struct {
	catalogService services.CatalogServiceInterface
}

func NewPackagesController(catalogService services.CatalogServiceInterface) *PackagesController {
	return &PackagesController{
		catalogService: catalogService,
	}
}

func (p *PackagesController) CreatePackage(c *gin.Context) {
	var req request_models.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title, category and a positive price are required")
		return
	}

	pkg, err := p.catalogService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Package created successfully")
}

func (p *PackagesController) SearchPackages(c *gin.Context) {
	var filter request_models.PackageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	page, pageSize, ok := paging(c)
	if !ok {
		return
	}

	pkgs, err := p.catalogService.SearchPackages(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkgs, "Packages fetched successfully")
}

func (p *PackagesController) GetPackageByID(c *gin.Context) {
	packageID := c.Param("id")
	if packageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Package ID is required")
		return
	}

	pkg, err := p.catalogService.GetPackageByID(c.Request.Context(), packageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pkg, "Package fetched successfully")
}

func paging(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}
