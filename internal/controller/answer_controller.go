package controller

import (
	"courseforge_backend/internal/model"
	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	QuizService *service.QuizService
}

func NewAnswerController(quizService *service.QuizService) *AnswerController {
	return &AnswerController{QuizService: quizService}
}

// ListForQuestion godoc
// @Summary List a question's answer options
// @Tags answers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/questions/{id}/answers [get]
func (c *AnswerController) ListForQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	answers, err := c.QuizService.ListAnswers(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		respondChainError(ctx, err, "Question not found")
		return
	}

	util.Success(ctx, gin.H{"answers": answers})
}

type AnswerCreateRequest struct {
	Answer    string `json:"answer" binding:"required"`
	IsCorrect *bool  `json:"isCorrect"`
	Order     *int   `json:"order"`
}

// Create godoc
// @Summary Add an answer option to a question
// @Description isCorrect defaults to false, order to the current answer count.
// @Tags answers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/questions/{id}/answers [post]
func (c *AnswerController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req AnswerCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer := &model.Answer{Answer: req.Answer}
	if req.IsCorrect != nil {
		answer.IsCorrect = *req.IsCorrect
	}

	if err := c.QuizService.CreateAnswer(util.MustParseUint(ctx.Param("id")), claims.UserID, answer, req.Order); err != nil {
		respondChainError(ctx, err, "Question not found")
		return
	}

	util.Created(ctx, gin.H{"answer": answer})
}

type AnswerUpdateRequest struct {
	Answer    *string `json:"answer"`
	IsCorrect *bool   `json:"isCorrect"`
	Order     *int    `json:"order"`
}

// Update godoc
// @Summary Update an answer option (partial)
// @Tags answers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/answers/{id} [put]
func (c *AnswerController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req AnswerUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.QuizService.UpdateAnswer(util.MustParseUint(ctx.Param("id")), claims.UserID, service.AnswerUpdate{
		Answer:    req.Answer,
		IsCorrect: req.IsCorrect,
		Order:     req.Order,
	})
	if err != nil {
		respondChainError(ctx, err, "Answer not found")
		return
	}

	util.Success(ctx, gin.H{"answer": answer})
}

// Delete godoc
// @Summary Delete an answer option
// @Tags answers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/instructor/answers/{id} [delete]
func (c *AnswerController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.QuizService.DeleteAnswer(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		respondChainError(ctx, err, "Answer not found")
		return
	}

	util.Success(ctx, gin.H{"message": "Answer deleted successfully"})
}
