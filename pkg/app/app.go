// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/destvault/pkg/api"
	"github.com/yeisme/destvault/pkg/configs"
	"github.com/yeisme/destvault/pkg/internal/jobs"
	"github.com/yeisme/destvault/pkg/internal/storage"
	"github.com/yeisme/destvault/pkg/log"
	"github.com/yeisme/destvault/pkg/metrics"
	"github.com/yeisme/destvault/pkg/middleware"
	"github.com/yeisme/destvault/pkg/scheduler"
	"github.com/yeisme/destvault/pkg/tracing"
)

type App struct {
	Engine    *gin.Engine
	Scheduler *scheduler.Scheduler
	config    *configs.AppConfig
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	log.Init()

	if !config.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// 调度器与业务定时任务
	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterCronJobs(sched, manager); err != nil {
		fmt.Printf("Error registering cron jobs: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.CORSMiddleware(config.Server),
		middleware.GinLoggerMiddleware(),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.Server.RateLimit),
		middleware.StorageMiddleware(manager),
		middleware.SchedulerMiddleware(sched),
	)

	api.RegisterGroup(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:    engine,
		Scheduler: sched,
		config:    config,
	}
}

func (a *App) Run() error {
	a.Scheduler.Start()
	defer func() { _ = a.Scheduler.Stop() }()

	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}
