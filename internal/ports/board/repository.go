package board

import (
	"context"
	"errors"
	"time"

	"forum/internal/core/board"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrBoardExists   = errors.New("board already exists")
)

// BoardRepository پورت برای ذخیره‌سازی و بازیابی بردها
type BoardRepository interface {
	Create(ctx context.Context, b *board.Board) (*board.Board, error)
	FindAll(ctx context.Context) ([]*board.Board, error)
	FindByID(ctx context.Context, id string) (*board.Board, error)
	FindByName(ctx context.Context, name string) (*board.Board, error)
}

// BoardCache کش لیست بردها برای صفحه اصلی
type BoardCache interface {
	GetBoards(ctx context.Context) ([]*BoardDTO, bool, error)
	SetBoards(ctx context.Context, boards []*BoardDTO, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// DTOها برای UseCase
type BoardDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TopicsCount int64  `json:"topics_count"`
	PostsCount  int64  `json:"posts_count"`
}
