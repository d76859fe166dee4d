package controller

import (
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	Service *service.ImportService
}

func NewImportController(s *service.ImportService) *ImportController {
	return &ImportController{Service: s}
}

// @Summary 导入题库
// @Description 将大模型生成的题目（JSON 数组或 JSON Lines）导入为新题库，全部成功或全部失败
// @Tags 导入
// @Accept json
// @Produce json
// @Param request body model.ImportRequest true "题库名称与题目数据"
// @Success 201 {object} util.Response{data=model.ImportResult}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /upload/import [post]
func (c *ImportController) Import(ctx *gin.Context) {
	var req model.ImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Import(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}
