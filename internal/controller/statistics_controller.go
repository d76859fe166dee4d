package controller

import (
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Service *service.StatisticsService
}

func NewStatisticsController(s *service.StatisticsService) *StatisticsController {
	return &StatisticsController{Service: s}
}

// @Summary 统计概览
// @Description 题库总数、题目总数以及各题型的题量、完成数和正确数
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response{data=model.StatisticsOverview}
// @Router /statistics/overview [get]
func (c *StatisticsController) Overview(ctx *gin.Context) {
	overview, err := c.Service.Overview(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
