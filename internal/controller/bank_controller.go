package controller

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BankController struct {
	Service *service.BankService
}

func NewBankController(s *service.BankService) *BankController {
	return &BankController{Service: s}
}

// @Summary 获取题库列表
// @Tags 题库
// @Produce json
// @Success 200 {object} util.Response{data=[]model.QuestionBankDTO}
// @Router /bank [get]
func (c *BankController) ListBanks(ctx *gin.Context) {
	banks, err := c.Service.ListBanks(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, banks)
}

// @Summary 删除题库
// @Description 同时删除题库下的所有题目和选项
// @Tags 题库
// @Produce json
// @Param id path int true "题库ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /bank/{id} [delete]
func (c *BankController) DeleteBank(ctx *gin.Context) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.DeleteBank(ctx.Request.Context(), id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}

// @Summary 合并题库
// @Description 把两个题库的题目复制到一个新题库，学习进度清空，源题库不变
// @Tags 题库
// @Accept json
// @Produce json
// @Param request body model.MergeBanksRequest true "合并参数"
// @Success 201 {object} util.Response{data=model.MergeBanksResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /bank/merge [post]
func (c *BankController) MergeBanks(ctx *gin.Context) {
	var req model.MergeBanksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.MergeBanks(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}
