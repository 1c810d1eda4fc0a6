package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings تنظیمات برنامه که از .env و متغیرهای محیطی خوانده می‌شوند
type Settings struct {
	AppPort           string
	DBDriver          string
	DBDSN             string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	BoardCacheTTL     time.Duration
	// صفر یعنی worker بازسازی کش اجرا نمی‌شود
	BoardCacheRefresh time.Duration
	JWTSecret         string
	SessionSecret     string
	FixturesFile      string
	SSL               bool
}

func Init() *Settings {
	// بارگذاری .env
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	s := &Settings{
		AppPort:           getEnv("APP_PORT", "8000"),
		DBDriver:          getEnv("DB_DRIVER", DriverMySQL),
		DBDSN:             os.Getenv("DB_DSN"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		BoardCacheTTL:     time.Duration(getEnvInt("BOARD_CACHE_TTL", 60)) * time.Second,
		BoardCacheRefresh: time.Duration(getEnvInt("BOARD_CACHE_REFRESH", 30)) * time.Second,
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		FixturesFile:      os.Getenv("FIXTURES_FILE"),
		SSL:               os.Getenv("APP_SSL") == "true",
	}

	if s.DBDSN == "" {
		Logger.Fatal("DB_DSN is not set")
	}
	if s.JWTSecret == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}
	if s.SessionSecret == "" {
		s.SessionSecret = s.JWTSecret
	}
	if s.RedisAddr == "" {
		Logger.Warn("⚠️ REDIS_ADDR is not set, board cache disabled")
	}
	return s
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
