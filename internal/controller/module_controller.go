package controller

import (
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	ModuleService *service.ModuleService
}

func NewModuleController(moduleService *service.ModuleService) *ModuleController {
	return &ModuleController{ModuleService: moduleService}
}

// ListForCourse godoc
// @Summary List a course's modules with sections and quiz
// @Tags modules
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/courses/{id}/modules [get]
func (c *ModuleController) ListForCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	modules, err := c.ModuleService.ListForCourse(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Course not found")
		return
	}

	util.Success(ctx, gin.H{"modules": modules})
}

type ModuleCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Order       *int   `json:"order"`
}

// Create godoc
// @Summary Add a module to a course
// @Description Order defaults to the current module count when omitted.
// @Tags modules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "module title is required"
// @Failure 404 {object} util.Response
// @Router /api/instructor/courses/{id}/modules [post]
func (c *ModuleController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req ModuleCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module := &model.CourseModule{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := c.ModuleService.Create(util.MustParseUint(ctx.Param("id")), claims.UserID, module, req.Order); err != nil {
		respondChainError(ctx, err, "Course not found")
		return
	}

	util.Created(ctx, gin.H{"module": module})
}

// Get godoc
// @Summary Fetch a module with its sections
// @Tags modules
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/modules/{id} [get]
func (c *ModuleController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	module, err := c.ModuleService.Get(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Module not found")
		return
	}

	util.Success(ctx, gin.H{"module": module})
}

type ModuleUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

// Update godoc
// @Summary Update a module (partial)
// @Tags modules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/modules/{id} [put]
func (c *ModuleController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req ModuleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.ModuleService.Update(util.MustParseUint(ctx.Param("id")), claims.UserID, service.ModuleUpdate{
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		respondChainError(ctx, err, "Module not found")
		return
	}

	util.Success(ctx, gin.H{"module": module})
}

// Delete godoc
// @Summary Delete a module and everything under it
// @Description Sections, the module quiz and its questions/answers go with the module.
// @Tags modules
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/modules/{id} [delete]
func (c *ModuleController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.ModuleService.Delete(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		respondChainError(ctx, err, "Module not found")
		return
	}

	util.Success(ctx, gin.H{"message": "Module deleted successfully"})
}
