package controller

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	QueryService  *service.QuestionQueryService
	AnswerService *service.AnswerService
}

func NewContentController(query *service.QuestionQueryService, answer *service.AnswerService) *ContentController {
	return &ContentController{QueryService: query, AnswerService: answer}
}

// @Summary 查询题目
// @Description type=wrong 只返回错题，否则返回全部题目；选项按标签排序
// @Tags 内容
// @Produce json
// @Param bankId query int true "题库ID"
// @Param type query string false "all 或 wrong"
// @Success 200 {object} util.Response{data=[]model.QuestionDTO}
// @Failure 400 {object} util.Response
// @Router /content/questions [get]
func (c *ContentController) GetQuestions(ctx *gin.Context) {
	bankID, err := util.ParseID(ctx.Query("bankId"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.QueryService.QueryQuestions(ctx.Request.Context(), bankID, ctx.DefaultQuery("type", util.QueryScopeAll))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 按题型查询题目
// @Tags 内容
// @Produce json
// @Param bankId query int true "题库ID"
// @Param questionType query string true "single/multiple/true_false/fill_blank/short_answer"
// @Success 200 {object} util.Response{data=[]model.QuestionDTO}
// @Failure 400 {object} util.Response
// @Router /content/questions-by-type [get]
func (c *ContentController) GetQuestionsByType(ctx *gin.Context) {
	bankID, err := util.ParseID(ctx.Query("bankId"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.QueryService.QueryQuestionsByType(ctx.Request.Context(), bankID, ctx.Query("questionType"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 校验答案
// @Description 标准化用户答案并与标准答案比较，记录作答结果（重复提交以最后一次为准）
// @Tags 内容
// @Accept json
// @Produce json
// @Param request body model.VerifyAnswerRequest true "题目ID与用户答案"
// @Success 200 {object} util.Response{data=model.AnswerVerificationResponse}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /content/verify-answer [post]
func (c *ContentController) VerifyAnswer(ctx *gin.Context) {
	var req model.VerifyAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AnswerService.Verify(ctx.Request.Context(), req.QuestionID, req.UserAnswer)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}
