package workers

import (
	"context"
	"time"

	boardPort "forum/internal/ports/board"

	"go.uber.org/zap"
)

// BoardRefresher لیست بردها را از دیتابیس خوانده و در کش می‌نویسد
type BoardRefresher interface {
	RefreshBoards(ctx context.Context) ([]*boardPort.BoardDTO, error)
}

// BoardCacheWorker کش لیست بردها را قبل از انقضا دوباره پر می‌کند
type BoardCacheWorker struct {
	Boards   BoardRefresher
	Interval time.Duration
	Logger   *zap.Logger
}

func NewBoardCacheWorker(boards BoardRefresher, interval time.Duration, logger *zap.Logger) *BoardCacheWorker {
	return &BoardCacheWorker{
		Boards:   boards,
		Interval: interval,
		Logger:   logger,
	}
}

// Run تا بسته شدن ctx هر Interval یک بار کش را تازه می‌کند
func (w *BoardCacheWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 BoardCacheWorker started", zap.Duration("interval", w.Interval))
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 BoardCacheWorker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *BoardCacheWorker) refresh(ctx context.Context) {
	boards, err := w.Boards.RefreshBoards(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.Logger.Error("❌ Error refreshing board cache:", zap.Error(err))
		}
		return
	}
	w.Logger.Debug("✅ Board cache refreshed", zap.Int("boards", len(boards)))
}
