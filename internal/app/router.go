package app

import (
	"question_bank_backend/docs"
	"question_bank_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 导入
		api.POST("/upload/import", c.importer.Import)

		// 题库
		bank := api.Group("/bank")
		{
			bank.GET("", c.bank.ListBanks)
			bank.POST("/merge", c.bank.MergeBanks)
			bank.DELETE("/:id", c.bank.DeleteBank)
		}

		// 题目查询与答题
		content := api.Group("/content")
		{
			content.GET("/questions", c.content.GetQuestions)
			content.GET("/questions-by-type", c.content.GetQuestionsByType)
			content.POST("/verify-answer", c.content.VerifyAnswer)
		}

		api.GET("/statistics/overview", c.statistics.Overview)
	}
}
