package controller

import (
	"errors"

	"courseforge_backend/internal/model"
	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// List godoc
// @Summary List the caller's categories
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/instructor/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	categories, err := c.CategoryService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"categories": categories})
}

type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create godoc
// @Summary Create a category
// @Description Name must be unique per instructor; the unique-index violation maps to 400.
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "missing name or duplicate"
// @Router /api/instructor/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req CategoryCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category := &model.Category{
		Name:         req.Name,
		Description:  req.Description,
		InstructorID: claims.UserID,
	}

	if err := c.CategoryService.Create(category); err != nil {
		if errors.Is(err, util.ErrCategoryExists) {
			util.BadRequest(ctx, util.ErrCategoryExists.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"category": category})
}

// Get godoc
// @Summary Fetch one of the caller's categories
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/instructor/categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	category, err := c.CategoryService.Get(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Category not found")
		return
	}

	util.Success(ctx, gin.H{"category": category})
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Update godoc
// @Summary Update a category (partial)
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "duplicate name"
// @Failure 404 {object} util.Response
// @Router /api/instructor/categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req CategoryUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Update(util.MustParseUint(ctx.Param("id")), claims.UserID, service.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, util.ErrCategoryExists) {
			util.BadRequest(ctx, util.ErrCategoryExists.Error())
		} else {
			respondChainError(ctx, err, "Category not found")
		}
		return
	}

	util.Success(ctx, gin.H{"category": category})
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.CategoryService.Delete(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		respondChainError(ctx, err, "Category not found")
		return
	}

	util.Success(ctx, gin.H{"message": "Category deleted successfully"})
}
