package post

import (
	"time"

	"forum/internal/core/topic"
	"forum/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

const MaxMessageLength = 4000

type Post struct {
	ID          uuid.UUID   `gorm:"primary_key;type:char(36)"`
	Message     string      `gorm:"type:text;not null"`
	TopicID     uuid.UUID   `gorm:"type:char(36);not null;index"`
	Topic       topic.Topic `gorm:"foreignKey:TopicID"` // ارتباط با مدل Topic
	CreatedByID uuid.UUID   `gorm:"type:char(36);not null"`
	CreatedBy   user.User   `gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
	// ویرایش پیاده‌سازی نشده؛ این دو فیلد فقط در schema هستند
	UpdatedByID *uuid.UUID `gorm:"type:char(36)"`
	UpdatedBy   *user.User `gorm:"foreignKey:UpdatedByID"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
