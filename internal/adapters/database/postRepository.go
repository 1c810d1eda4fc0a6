package database

import (
	"context"

	"forum/internal/core/post"

	"gorm.io/gorm"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

type countRow struct {
	GroupID string
	Total   int64
}

func (repo *PostRepositoryDatabase) CountByTopicIDs(ctx context.Context, topicIDs []string) (map[string]int64, error) {
	if len(topicIDs) == 0 {
		return map[string]int64{}, nil
	}
	var rows []countRow
	if err := repo.db.WithContext(ctx).Model(&post.Post{}).
		Select("topic_id AS group_id, COUNT(*) AS total").
		Where("topic_id IN ?", topicIDs).
		Group("topic_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (repo *PostRepositoryDatabase) CountByBoardIDs(ctx context.Context, boardIDs []string) (map[string]int64, error) {
	if len(boardIDs) == 0 {
		return map[string]int64{}, nil
	}
	var rows []countRow
	if err := repo.db.WithContext(ctx).Model(&post.Post{}).
		Select("topics.board_id AS group_id, COUNT(*) AS total").
		Joins("JOIN topics ON topics.id = posts.topic_id").
		Where("topics.board_id IN ?", boardIDs).
		Group("topics.board_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func toCountMap(rows []countRow) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.GroupID] = r.Total
	}
	return counts
}
