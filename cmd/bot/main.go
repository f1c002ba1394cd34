package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/noabot/noabot-go/internal/classifier"
	"github.com/noabot/noabot-go/internal/client"
	"github.com/noabot/noabot-go/internal/config"
	"github.com/noabot/noabot-go/internal/handler"
	"github.com/noabot/noabot-go/internal/middleware"
	"github.com/noabot/noabot-go/internal/service"
	"github.com/noabot/noabot-go/internal/store"
	"github.com/noabot/noabot-go/pkg/logger"
	"github.com/noabot/noabot-go/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	// 本地 .env（不存在则忽略）
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.LoadConfig("configs/bot.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("bot 服务启动中...")

	// 会话与样本存储（默认内存，可切 Redis）
	var (
		sessions store.SessionStore
		samples  store.SampleStore
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("连接 Redis 失败", zap.Error(err))
		}
		sessions = store.NewRedisSessionStore(redisClient)
		samples = store.NewRedisSampleStore(redisClient)
		zapLogger.Info("使用 Redis 存储")
	} else {
		sessions = store.NewMemorySessionStore()
		samples = store.NewMemorySampleStore()
		zapLogger.Info("使用内存存储")
	}

	// 分类器与再训练
	cls := classifier.NewClassifier(cfg.Bot.ConfidenceThreshold, zapLogger)
	trainer := service.NewTrainerService(samples, cls, zapLogger)

	// 启动时先做一次训练（种子 + 已有样本）
	if seedCount, sampleCount, err := trainer.Retrain(context.Background()); err != nil {
		zapLogger.Error("初始训练失败，以冷启动模型运行", zap.Error(err))
	} else {
		zapLogger.Info("初始训练完成",
			zap.Int("seed", seedCount),
			zap.Int("samples", sampleCount))
	}

	// 出站通道与派发
	transport := client.NewWasenderClient(cfg.Wasender.BaseURL, cfg.Wasender.Token, zapLogger)
	dispatcher := service.NewDispatcher(
		transport,
		time.Duration(cfg.Bot.MinSendGapMs)*time.Millisecond,
		time.Duration(cfg.Bot.RetryMinMs)*time.Millisecond,
		time.Duration(cfg.Bot.RetryMaxMs)*time.Millisecond,
		zapLogger,
	)

	// 对话引擎与路由
	dedup := service.NewDeduplicator(cfg.Bot.DedupCapacity, zapLogger)
	dialog := service.NewDialogService(sessions, cls, cfg.Wasender.BotName, cfg.Wasender.OwnerPhone, zapLogger)
	router := service.NewRouterService(dedup, dialog, dispatcher, zapLogger)

	// 初始化处理器
	webhookHandler := handler.NewWebhookHandler(router, zapLogger)
	adminHandler := handler.NewAdminHandler(samples, trainer, zapLogger)
	consoleHandler := handler.NewConsoleHandler(router, zapLogger)

	// 初始化路由
	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(20, 40))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "%s está en línea 🚀", cfg.Wasender.BotName)
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": cfg.Server.Name})
	})

	r.POST("/webhook", webhookHandler.Handle)
	r.GET("/ws", consoleHandler.Handle)

	// 管理接口（共享密钥鉴权）
	admin := r.Group("/api/admin", middleware.AdminAuth(cfg.Admin.Secret))
	admin.POST("/samples", adminHandler.SubmitSample)
	admin.POST("/retrain", adminHandler.Retrain)

	// 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("bot 服务启动成功", zap.Int("port", cfg.Server.Port))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("服务启动失败", zap.Error(err))
	}
}
