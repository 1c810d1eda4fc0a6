package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// DB متغیر برای دسترسی به دیتابیس
var DB *gorm.DB

// OpenDB اتصال gorm را برای درایور داده‌شده باز می‌کند
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return gorm.Open(dialector, &gorm.Config{})
}

// InitDB اتصال به دیتابیس را راه‌اندازی می‌کند
func InitDB(s *Settings) {
	var err error
	DB, err = OpenDB(s.DBDriver, s.DBDSN)
	if err != nil {
		Logger.Fatal("Error connecting to the database:", zap.Error(err))
	}
	Logger.Info("✅ Database connected", zap.String("driver", s.DBDriver))
}
