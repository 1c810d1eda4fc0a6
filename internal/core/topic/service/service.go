package topicapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"forum/internal/config"
	postEntity "forum/internal/core/post"
	topicEntity "forum/internal/core/topic"
	userEntity "forum/internal/core/user"
	boardPort "forum/internal/ports/board"
	topicPort "forum/internal/ports/topic"
	userPort "forum/internal/ports/user"

	"go.uber.org/zap"
)

type TopicService struct {
	BoardRepository boardPort.BoardRepository
	TopicRepository topicPort.TopicRepository
	UserRepository  userPort.UserRepository
	BoardCache      boardPort.BoardCache
	now             func() time.Time
}

func NewTopicService(
	boardRepo boardPort.BoardRepository,
	topicRepo topicPort.TopicRepository,
	userRepo userPort.UserRepository,
	cache boardPort.BoardCache,
) *TopicService {
	return &TopicService{
		BoardRepository: boardRepo,
		TopicRepository: topicRepo,
		UserRepository:  userRepo,
		BoardCache:      cache,
		now:             time.Now,
	}
}

// CreateTopic تاپیک جدید به همراه پست اول در یک تراکنش ساخته می‌شود.
// subject و message باید قبلاً در لایه فرم اعتبارسنجی شده باشند.
func (s *TopicService) CreateTopic(ctx context.Context, boardID, subject, message, requesterID string) (*topicPort.TopicDTO, error) {
	b, err := s.BoardRepository.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	author, err := s.resolveAuthor(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &topicEntity.Topic{
		Subject:   subject,
		BoardID:   b.ID,
		StarterID: author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p := &postEntity.Post{
		Message:     message,
		CreatedByID: author.ID,
		CreatedAt:   now,
	}

	if err := s.TopicRepository.CreateWithPost(ctx, t, p); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	config.Logger.Info("📝 Created topic",
		zap.String("topicID", t.ID.String()),
		zap.String("boardID", b.ID.String()),
		zap.String("starter", author.Username))

	// تعداد تاپیک‌ها و پست‌های صفحه اصلی عوض شده است
	if err := s.BoardCache.Invalidate(ctx); err != nil {
		config.Logger.Warn("⚠️ Could not invalidate board cache", zap.Error(err))
	}

	return &topicPort.TopicDTO{
		ID:        t.ID.String(),
		Subject:   t.Subject,
		BoardID:   b.ID.String(),
		Starter:   author.Username,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}, nil
}

// resolveAuthor کاربر احراز هویت‌شده؛ در غیر این صورت کاربر پیش‌فرض
func (s *TopicService) resolveAuthor(ctx context.Context, requesterID string) (*userEntity.User, error) {
	if requesterID != "" {
		u, err := s.UserRepository.FindByID(ctx, requesterID)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, userPort.ErrUserNotFound) {
			return nil, err
		}
		// توکن معتبر ولی کاربر حذف شده
		return nil, topicPort.ErrNoAuthor
	}

	u, err := s.UserRepository.FindFirst(ctx)
	if errors.Is(err, userPort.ErrUserNotFound) {
		return nil, topicPort.ErrNoAuthor
	}
	return u, err
}
