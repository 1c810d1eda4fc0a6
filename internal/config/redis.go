package config

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient متغیر برای دسترسی به Redis؛ وقتی REDIS_ADDR خالی است nil می‌ماند
var RedisClient *redis.Client

// InitRedis اتصال به Redis را راه‌اندازی می‌کند
func InitRedis(ctx context.Context, s *Settings) {
	if s.RedisAddr == "" {
		return
	}
	// تنظیمات اتصال به Redis
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,     // آدرس Redis
		Password: s.RedisPassword, // رمز عبور
		DB:       s.RedisDB,       // شماره دیتابیس
	})

	// بررسی اتصال به Redis
	pong, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}
	Logger.Info("✅ Connected to Redis", zap.String("ping", pong))
}
