package controller

import (
	"errors"

	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type QuizRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	PassingScore *int   `json:"passingScore"`
	TimeLimit    *int   `json:"timeLimit"`
}

func (r QuizRequest) input() service.QuizInput {
	return service.QuizInput{
		Title:        r.Title,
		Description:  r.Description,
		PassingScore: r.PassingScore,
		TimeLimit:    r.TimeLimit,
	}
}

// GetModuleQuiz godoc
// @Summary Fetch a module's quiz with questions and answers
// @Description Responds with quiz=null when the module has no quiz yet.
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/modules/{id}/quiz [get]
func (c *QuizController) GetModuleQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	quiz, err := c.QuizService.GetModuleQuiz(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Module not found")
		return
	}

	util.Success(ctx, gin.H{"quiz": quiz})
}

// UpsertModuleQuiz godoc
// @Summary Create or replace a module's quiz
// @Description If the module already has a quiz its settings are overwritten in
// @Description place; questions and answers are kept. passingScore defaults to 60.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/modules/{id}/quiz [post]
func (c *QuizController) UpsertModuleQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.UpsertModuleQuiz(util.MustParseUint(ctx.Param("id")), claims.UserID, req.input())
	if err != nil {
		respondChainError(ctx, err, "Module not found")
		return
	}

	util.Success(ctx, gin.H{"quiz": quiz})
}

// DeleteModuleQuiz godoc
// @Summary Delete a module's quiz with all questions and answers
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response "Quiz not found"
// @Router /api/instructor/modules/{id}/quiz [delete]
func (c *QuizController) DeleteModuleQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	err := c.QuizService.DeleteModuleQuiz(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz not found")
			return
		}
		respondChainError(ctx, err, "Module not found")
		return
	}

	util.Success(ctx, gin.H{"message": "Quiz deleted successfully"})
}

// GetFinalExam godoc
// @Summary Fetch a course's final exam with questions and answers
// @Description Responds with quiz=null when the course has no final exam yet.
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/courses/{id}/final-exam [get]
func (c *QuizController) GetFinalExam(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	quiz, err := c.QuizService.GetFinalExam(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Course not found")
		return
	}

	util.Success(ctx, gin.H{"quiz": quiz})
}

// UpsertFinalExam godoc
// @Summary Create or replace a course's final exam
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/courses/{id}/final-exam [post]
func (c *QuizController) UpsertFinalExam(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.UpsertFinalExam(util.MustParseUint(ctx.Param("id")), claims.UserID, req.input())
	if err != nil {
		respondChainError(ctx, err, "Course not found")
		return
	}

	util.Success(ctx, gin.H{"quiz": quiz})
}

// DeleteFinalExam godoc
// @Summary Delete a course's final exam with all questions and answers
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response "Final exam not found"
// @Router /api/instructor/courses/{id}/final-exam [delete]
func (c *QuizController) DeleteFinalExam(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	err := c.QuizService.DeleteFinalExam(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Final exam not found")
			return
		}
		respondChainError(ctx, err, "Course not found")
		return
	}

	util.Success(ctx, gin.H{"message": "Final exam deleted successfully"})
}
