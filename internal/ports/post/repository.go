package post

import "context"

// PostRepository پورت برای شمارش پست‌ها در لیست‌ها
type PostRepository interface {
	CountByTopicIDs(ctx context.Context, topicIDs []string) (map[string]int64, error)
	CountByBoardIDs(ctx context.Context, boardIDs []string) (map[string]int64, error)
}
