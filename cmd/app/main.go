package main

import (
	"context"
	"os"

	dbadapter "forum/internal/adapters/database"
	"forum/internal/adapters/httpapi"
	redisadapter "forum/internal/adapters/redis"
	"forum/internal/config"
	boardapp "forum/internal/core/board/service"
	topicapp "forum/internal/core/topic/service"
	userapp "forum/internal/core/user/service"
	"forum/internal/fixtures"
	boardPort "forum/internal/ports/board"
	"forum/internal/workers"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	defer config.Logger.Sync() // flush buffer

	settings := config.Init() // بارگذاری تنظیمات از .env

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	config.InitDB(settings)
	if err := dbadapter.AutoMigrate(config.DB); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	// اتصال به Redis (اختیاری)
	config.InitRedis(ctx, settings)

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(config.Logger)

	var boardCache boardPort.BoardCache = redisadapter.NopBoardCache{}
	if config.RedisClient != nil {
		boardCache = redisadapter.NewBoardCacheRedis(config.RedisClient)
	}

	// آداپتورهای خروجی
	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	boardRepo := dbadapter.NewBoardRepositoryDatabase(config.DB)
	topicRepo := dbadapter.NewTopicRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)

	// یوزکیس‌ها/سرویس‌ها
	userSvc := userapp.NewUserService(userRepo, []byte(settings.JWTSecret))
	boardSvc := boardapp.NewBoardService(boardRepo, topicRepo, postRepo, boardCache, settings.BoardCacheTTL)
	topicSvc := topicapp.NewTopicService(boardRepo, topicRepo, userRepo, boardCache)

	if settings.FixturesFile != "" {
		f, err := fixtures.Load(settings.FixturesFile)
		if err != nil {
			config.Logger.Fatal("Error loading fixtures:", zap.Error(err))
		}
		if _, err := fixtures.Apply(ctx, f, boardSvc, userSvc); err != nil {
			config.Logger.Fatal("Error applying fixtures:", zap.Error(err))
		}
	}

	// worker پر نگه داشتن کش بردها، فقط وقتی Redis داریم
	if config.RedisClient != nil && settings.BoardCacheRefresh > 0 {
		go workers.NewBoardCacheWorker(boardSvc, settings.BoardCacheRefresh, config.Logger).Run(ctx)
	}

	// تزریق یوزکیس به آداپتر ورودی
	r := httpapi.SetupRoutes(boardSvc, topicSvc, userSvc, httpapi.Options{
		SessionSecret: settings.SessionSecret,
		SSL:           settings.SSL,
	})

	config.Logger.Info("🚀 App is running...", zap.String("port", settings.AppPort))
	if err := r.Run(":" + settings.AppPort); err != nil {
		config.Logger.Error("Server failed to start:", zap.Error(err))
		closeResources(config.Logger)
		os.Exit(1)
	}
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger) {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection:", zap.Error(err))
		}
	}

	sqlDB, err := config.DB.DB() // گرفتن *sql.DB از *gorm.DB
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
