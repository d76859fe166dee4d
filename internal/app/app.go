package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/controller"
	"question_bank_backend/internal/middleware"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/service"
	"question_bank_backend/internal/util"
	"question_bank_backend/pkg/configwatcher"
	"question_bank_backend/pkg/database"
	"question_bank_backend/pkg/logger"
	"question_bank_backend/pkg/monitoring"
	"question_bank_backend/pkg/security"
	"question_bank_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	limiter         *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	bank     *repository.QuestionBankRepository
	question *repository.QuestionRepository
}

type services struct {
	storage    *service.StorageService
	statistics *service.StatisticsService
	importer   *service.ImportService
	bank       *service.BankService
	answer     *service.AnswerService
	query      *service.QuestionQueryService
}

type controllers struct {
	importer   *controller.ImportController
	bank       *controller.BankController
	content    *controller.ContentController
	statistics *controller.StatisticsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		bank:     repository.NewQuestionBankRepository(db),
		question: repository.NewQuestionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.statistics = service.NewStatisticsService(repos.bank, repos.question, rdb,
		time.Duration(cfg.Redis.StatsTTLSeconds)*time.Second)
	s.importer = service.NewImportService(db, repos.bank, repos.question, s.storage, s.statistics, &cfg.Import)
	s.bank = service.NewBankService(db, repos.bank, repos.question, s.statistics, s.storage, &cfg.Import)
	s.answer = service.NewAnswerService(db, repos.bank, repos.question, s.statistics)
	s.query = service.NewQuestionQueryService(repos.question)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		importer:   controller.NewImportController(s.importer),
		bank:       controller.NewBankController(s.bank),
		content:    controller.NewContentController(s.query, s.answer),
		statistics: controller.NewStatisticsController(s.statistics),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.limiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// registerReloadCallbacks 配置热加载时可以在线调整的项：日志级别和限流速率
func (a *App) registerReloadCallbacks() {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		logger.SetLevel(cfg)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		a.limiter.Update(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	})
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerReloadCallbacks()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 配置热加载
	stopWatch := make(chan struct{})
	go func() {
		if err := configwatcher.WatchConfig(a.Config.Path, a.applyConfig, stopWatch); err != nil {
			logger.Log.Warn("Config watcher disabled", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	close(stopWatch)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	a.limiter.Close()
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
