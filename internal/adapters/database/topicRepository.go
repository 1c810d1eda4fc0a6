package database

import (
	"context"
	"fmt"

	"forum/internal/core/post"
	"forum/internal/core/topic"

	"gorm.io/gorm"
)

type TopicRepositoryDatabase struct {
	db *gorm.DB
}

func NewTopicRepositoryDatabase(db *gorm.DB) *TopicRepositoryDatabase {
	return &TopicRepositoryDatabase{db: db}
}

// CreateWithPost تاپیک و پست اول را با هم ذخیره می‌کند؛ یا هر دو یا هیچ‌کدام
func (repo *TopicRepositoryDatabase) CreateWithPost(ctx context.Context, t *topic.Topic, p *post.Post) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Board", "Starter").Create(t).Error; err != nil {
			return fmt.Errorf("create topic: %w", err)
		}
		p.TopicID = t.ID
		if err := tx.Omit("Topic", "CreatedBy", "UpdatedBy").Create(p).Error; err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		return nil
	})
}

// FindByBoardID تاپیک‌های یک برد، جدیدترین اول، همراه با شروع‌کننده
func (repo *TopicRepositoryDatabase) FindByBoardID(ctx context.Context, boardID string) ([]*topic.Topic, error) {
	var topics []*topic.Topic
	if err := repo.db.WithContext(ctx).
		Preload("Starter").
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (repo *TopicRepositoryDatabase) CountByBoardIDs(ctx context.Context, boardIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(boardIDs))
	if len(boardIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		BoardID string
		Total   int64
	}
	if err := repo.db.WithContext(ctx).Model(&topic.Topic{}).
		Select("board_id, COUNT(*) AS total").
		Where("board_id IN ?", boardIDs).
		Group("board_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.BoardID] = r.Total
	}
	return counts, nil
}
