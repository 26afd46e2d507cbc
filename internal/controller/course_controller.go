package controller

import (
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	StatsService  *service.StatsService
}

func NewCourseController(courseService *service.CourseService, statsService *service.StatsService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		StatsService:  statsService,
	}
}

// List godoc
// @Summary List the caller's courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/instructor/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	courses, err := c.CourseService.ListForInstructor(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"courses": courses})
}

type CourseCreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail"`
	Status      string  `json:"status" binding:"omitempty,oneof=draft published"`
}

// Create godoc
// @Summary Create a course
// @Description The referenced category must belong to the caller.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "title, description and category are required"
// @Failure 404 {object} util.Response "category not found"
// @Router /api/instructor/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req CourseCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		InstructorID: claims.UserID,
		Price:        req.Price,
		Thumbnail:    req.Thumbnail,
		Status:       model.CourseStatus(req.Status),
	}

	if err := c.CourseService.Create(course); err != nil {
		respondChainError(ctx, err, "Category not found")
		return
	}

	util.Created(ctx, gin.H{"course": course})
}

// Get godoc
// @Summary Fetch a course with its full authoring tree
// @Description Modules come ordered with their sections and quiz; the final exam is included when present.
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	course, err := c.CourseService.GetTree(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Course not found")
		return
	}

	util.Success(ctx, gin.H{"course": course})
}

type CourseUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CategoryID  *uint    `json:"categoryId"`
	Price       *float64 `json:"price"`
	Thumbnail   *string  `json:"thumbnail"`
	Status      *string  `json:"status" binding:"omitempty,oneof=draft published"`
}

// Update godoc
// @Summary Update a course (partial)
// @Description Only supplied fields overwrite; omitted fields keep their value.
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req CourseUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update := service.CourseUpdate{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
	}
	if req.Status != nil {
		status := model.CourseStatus(*req.Status)
		update.Status = &status
	}

	course, err := c.CourseService.Update(util.MustParseUint(ctx.Param("id")), claims.UserID, update)
	if err != nil {
		respondChainError(ctx, err, "Course not found")
		return
	}

	util.Success(ctx, gin.H{"course": course})
}

// Delete godoc
// @Summary Delete a course and its whole subtree
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.CourseService.Delete(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		respondChainError(ctx, err, "Course not found")
		return
	}

	util.Success(ctx, gin.H{"message": "Course deleted successfully"})
}

// Statistics godoc
// @Summary Instructor dashboard counters
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/instructor/statistics [get]
func (c *CourseController) Statistics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	stats, err := c.StatsService.ForInstructor(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"statistics": stats})
}
