package topic

import (
	"time"

	"forum/internal/core/board"
	"forum/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

const MaxSubjectLength = 255

type Topic struct {
	ID        uuid.UUID   `gorm:"primary_key;type:char(36)"`
	Subject   string      `gorm:"type:varchar(255);not null"`
	BoardID   uuid.UUID   `gorm:"type:char(36);not null;index"`
	Board     board.Board `gorm:"foreignKey:BoardID"` // ارتباط با مدل Board
	StarterID uuid.UUID   `gorm:"type:char(36);not null"`
	Starter   user.User   `gorm:"foreignKey:StarterID"` // کاربری که تاپیک را شروع کرده
	CreatedAt time.Time   `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime"`
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
