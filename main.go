// @title 题库服务 API
// @version 1.0
// @description 题目导入、题库合并与答案校验服务。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"question_bank_backend/internal/app"
	"question_bank_backend/internal/config"
	"question_bank_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
