package config

import (
	"log"

	"go.uber.org/zap"
)

// Logger تا قبل از InitLogger یک logger بی‌صدا است تا تست‌ها و ابزارها بدون راه‌اندازی کار کنند
var Logger = zap.NewNop()

func InitLogger() {
	var err error
	// می‌توان logger production یا development انتخاب کرد
	Logger, err = zap.NewDevelopment() // برای توسعه
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	Logger.Info("✅ Zap logger initialized")
}
