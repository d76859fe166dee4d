// 手动导入题目文件脚本
//
// 把 JSON 数组或 JSON Lines 文件导入为一个新题库，适用于首次部署时批量灌入题目。
//
// 用法: go run scripts/import_file.go -file questions.jsonl -name "题库名称" [-desc "描述"]

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/service"
	"question_bank_backend/pkg/database"
	"question_bank_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "题目文件路径（JSON 数组或 JSON Lines）")
	name := flag.String("name", "", "新题库名称")
	desc := flag.String("desc", "", "新题库描述")
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	if *file == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	// 日志初始化之后统一走 zap，Fatal 会先 Sync 再退出
	result, err := run(cfg, *file, *name, *desc)
	if err != nil {
		logger.Log.Fatal("导入失败", zap.String("file", *file), zap.Error(err))
	}
	logger.Log.Info("导入完成",
		zap.Uint("bank_id", result.BankID),
		zap.Int("questions", result.QuestionCount),
		zap.Int("options", result.OptionCount),
	)
}

func run(cfg *config.Config, file, name, desc string) (*model.ImportResult, error) {
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	payload, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("无法读取题目文件: %w", err)
	}

	bankRepo := repository.NewQuestionBankRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	importer := service.NewImportService(db, bankRepo, questionRepo,
		service.NewStorageService(cfg), nil, &cfg.Import)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	return importer.Import(ctx, model.ImportRequest{
		BankName:    name,
		Description: desc,
		Payload:     string(payload),
	})
}
