package database

import (
	"forum/internal/core/board"
	"forum/internal/core/post"
	"forum/internal/core/topic"
	"forum/internal/core/user"

	"gorm.io/gorm"
)

// AutoMigrate اعمال مایگریشن برای همه مدل‌ها
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&board.Board{},
		&topic.Topic{},
		&post.Post{},
	)
}
