package redis

import (
	"context"
	"errors"
	"time"

	"forum/internal/config"
	boardPort "forum/internal/ports/board"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const boardsKey = "forum:boards"

// BoardCacheRedis لیست بردها را به صورت JSON در یک کلید Redis نگه می‌دارد
type BoardCacheRedis struct {
	Client *redis.Client
}

func NewBoardCacheRedis(client *redis.Client) *BoardCacheRedis {
	return &BoardCacheRedis{
		Client: client,
	}
}

// GetBoards مقدار دوم false یعنی کلید در کش نبود
func (r *BoardCacheRedis) GetBoards(ctx context.Context) ([]*boardPort.BoardDTO, bool, error) {
	raw, err := r.Client.Get(ctx, boardsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var boards []*boardPort.BoardDTO
	if err := json.Unmarshal(raw, &boards); err != nil {
		// مقدار خراب را پاک می‌کنیم تا دفعه بعد از دیتابیس خوانده شود
		config.Logger.Warn("⚠️ Corrupted board cache entry, dropping it", zap.Error(err))
		_ = r.Client.Del(ctx, boardsKey).Err()
		return nil, false, nil
	}
	return boards, true, nil
}

func (r *BoardCacheRedis) SetBoards(ctx context.Context, boards []*boardPort.BoardDTO, ttl time.Duration) error {
	raw, err := json.Marshal(boards)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, boardsKey, raw, ttl).Err()
}

func (r *BoardCacheRedis) Invalidate(ctx context.Context) error {
	return r.Client.Del(ctx, boardsKey).Err()
}

// NopBoardCache وقتی Redis پیکربندی نشده استفاده می‌شود
type NopBoardCache struct{}

func (NopBoardCache) GetBoards(context.Context) ([]*boardPort.BoardDTO, bool, error) {
	return nil, false, nil
}

func (NopBoardCache) SetBoards(context.Context, []*boardPort.BoardDTO, time.Duration) error {
	return nil
}

func (NopBoardCache) Invalidate(context.Context) error { return nil }
