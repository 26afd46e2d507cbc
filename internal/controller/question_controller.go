package controller

import (
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuizService *service.QuizService
}

func NewQuestionController(quizService *service.QuizService) *QuestionController {
	return &QuestionController{QuizService: quizService}
}

// ListForQuiz godoc
// @Summary List a quiz's questions with their answers
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/quizzes/{id}/questions [get]
func (c *QuestionController) ListForQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	questions, err := c.QuizService.ListQuestions(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Quiz not found")
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

type QuestionCreateRequest struct {
	Question string `json:"question" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Order    *int   `json:"order"`
	Points   *int   `json:"points"`
}

// Create godoc
// @Summary Add a question to a quiz
// @Description Type is qcm, true_false or multiple_correct. Points
// @Description default to 1, order to the current question count.
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Invalid question type"
// @Failure 404 {object} util.Response
// @Router /api/instructor/quizzes/{id}/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req QuestionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !model.ValidQuestionType(req.Type) {
		util.BadRequest(ctx, "Invalid question type")
		return
	}

	question := &model.Question{
		Question: req.Question,
		Type:     model.QuestionType(req.Type),
	}
	if req.Points != nil {
		question.Points = *req.Points
	}

	if err := c.QuizService.CreateQuestion(util.MustParseUint(ctx.Param("id")), claims.UserID, question, req.Order); err != nil {
		respondChainError(ctx, err, "Quiz not found")
		return
	}

	util.Created(ctx, gin.H{"question": question})
}

type QuestionUpdateRequest struct {
	Question *string `json:"question"`
	Type     *string `json:"type"`
	Order    *int    `json:"order"`
	Points   *int    `json:"points"`
}

// Update godoc
// @Summary Update a question (partial)
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Invalid question type"
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req QuestionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update := service.QuestionUpdate{
		Question: req.Question,
		Order:    req.Order,
		Points:   req.Points,
	}
	if req.Type != nil {
		if !model.ValidQuestionType(*req.Type) {
			util.BadRequest(ctx, "Invalid question type")
			return
		}
		t := model.QuestionType(*req.Type)
		update.Type = &t
	}

	question, err := c.QuizService.UpdateQuestion(util.MustParseUint(ctx.Param("id")), claims.UserID, update)
	if err != nil {
		respondChainError(ctx, err, "Question not found")
		return
	}

	util.Success(ctx, gin.H{"question": question})
}

// Delete godoc
// @Summary Delete a question and its answers
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.QuizService.DeleteQuestion(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		respondChainError(ctx, err, "Question not found")
		return
	}

	util.Success(ctx, gin.H{"message": "Question deleted successfully"})
}
