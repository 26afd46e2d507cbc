package controller

import (
	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// ListPublished godoc
// @Summary Browse published courses (public)
// @Description Paginated catalog of published courses, optionally filtered by
// @Description category. No authentication required.
// @Tags catalog
// @Produce json
// @Param categoryId query int false "filter by category"
// @Param limit query int false "page size" default(12)
// @Param skip query int false "offset" default(0)
// @Success 200 {object} util.Response{data=service.CatalogPage}
// @Router /api/courses [get]
func (c *CatalogController) ListPublished(ctx *gin.Context) {
	categoryID := uint(util.ParseIntDefault(ctx.Query("categoryId"), 0))
	limit := util.ParseIntDefault(ctx.Query("limit"), 12)
	skip := util.ParseIntDefault(ctx.Query("skip"), 0)
	if limit < 1 || limit > 100 {
		limit = 12
	}
	if skip < 0 {
		skip = 0
	}

	page, err := c.CatalogService.ListPublished(ctx.Request.Context(), categoryID, limit, skip)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, page)
}
