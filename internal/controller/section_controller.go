package controller

import (
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SectionController struct {
	ModuleService *service.ModuleService
}

func NewSectionController(moduleService *service.ModuleService) *SectionController {
	return &SectionController{ModuleService: moduleService}
}

// ListForModule godoc
// @Summary List a module's sections ordered by position
// @Tags sections
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/modules/{id}/sections [get]
func (c *SectionController) ListForModule(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	sections, err := c.ModuleService.ListSections(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Module not found")
		return
	}

	util.Success(ctx, gin.H{"sections": sections})
}

type SectionCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	Order       *int   `json:"order"`
	FileURL     string `json:"fileUrl"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
	YoutubeURL  string `json:"youtubeUrl"`
}

// Create godoc
// @Summary Add a section to a module
// @Description Type is "file" or "youtube". File sections carry fileUrl/fileName/fileType,
// @Description youtube sections carry youtubeUrl. Order defaults to the current section count.
// @Tags sections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Invalid section type"
// @Failure 404 {object} util.Response
// @Router /api/instructor/modules/{id}/sections [post]
func (c *SectionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req SectionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !model.ValidSectionType(req.Type) {
		util.BadRequest(ctx, "Invalid section type")
		return
	}

	section := &model.Section{
		Title:       req.Title,
		Description: req.Description,
		Type:        model.SectionType(req.Type),
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileType:    req.FileType,
		YoutubeURL:  req.YoutubeURL,
	}

	if err := c.ModuleService.CreateSection(util.MustParseUint(ctx.Param("id")), claims.UserID, section, req.Order); err != nil {
		respondChainError(ctx, err, "Module not found")
		return
	}

	util.Created(ctx, gin.H{"section": section})
}

// Get godoc
// @Summary Fetch a single section
// @Tags sections
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/sections/{id} [get]
func (c *SectionController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	section, err := c.ModuleService.GetSection(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Section not found")
		return
	}

	util.Success(ctx, gin.H{"section": section})
}

type SectionUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	FileURL     *string `json:"fileUrl"`
	FileName    *string `json:"fileName"`
	FileType    *string `json:"fileType"`
	YoutubeURL  *string `json:"youtubeUrl"`
}

// Update godoc
// @Summary Update a section (partial)
// @Description The section type is fixed at creation and cannot be changed.
// @Tags sections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/sections/{id} [put]
func (c *SectionController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req SectionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.ModuleService.UpdateSection(util.MustParseUint(ctx.Param("id")), claims.UserID, service.SectionUpdate{
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileType:    req.FileType,
		YoutubeURL:  req.YoutubeURL,
	})
	if err != nil {
		respondChainError(ctx, err, "Section not found")
		return
	}

	util.Success(ctx, gin.H{"section": section})
}

// Delete godoc
// @Summary Delete a section
// @Tags sections
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/sections/{id} [delete]
func (c *SectionController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.ModuleService.DeleteSection(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		respondChainError(ctx, err, "Section not found")
		return
	}

	util.Success(ctx, gin.H{"message": "Section deleted successfully"})
}
