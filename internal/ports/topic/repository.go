package topic

import (
	"context"
	"errors"

	"forum/internal/core/post"
	"forum/internal/core/topic"
)

var ErrNoAuthor = errors.New("no user available to author the topic")

// TopicRepository پورت برای ذخیره‌سازی و بازیابی تاپیک‌ها
type TopicRepository interface {
	// CreateWithPost تاپیک و پست اول آن را در یک تراکنش ذخیره می‌کند
	CreateWithPost(ctx context.Context, t *topic.Topic, p *post.Post) error
	FindByBoardID(ctx context.Context, boardID string) ([]*topic.Topic, error)
	CountByBoardIDs(ctx context.Context, boardIDs []string) (map[string]int64, error)
}

// DTOها برای UseCase
type TopicDTO struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	BoardID   string `json:"board_id"`
	Starter   string `json:"starter"`
	Replies   int64  `json:"replies"`
	CreatedAt string `json:"created_at"`
}
