package boardapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"forum/internal/config"
	boardEntity "forum/internal/core/board"
	boardPort "forum/internal/ports/board"
	postPort "forum/internal/ports/post"
	topicPort "forum/internal/ports/topic"

	"go.uber.org/zap"
)

type BoardService struct {
	BoardRepository boardPort.BoardRepository
	TopicRepository topicPort.TopicRepository
	PostRepository  postPort.PostRepository
	Cache           boardPort.BoardCache
	CacheTTL        time.Duration
}

func NewBoardService(
	boardRepo boardPort.BoardRepository,
	topicRepo topicPort.TopicRepository,
	postRepo postPort.PostRepository,
	cache boardPort.BoardCache,
	cacheTTL time.Duration,
) *BoardService {
	return &BoardService{
		BoardRepository: boardRepo,
		TopicRepository: topicRepo,
		PostRepository:  postRepo,
		Cache:           cache,
		CacheTTL:        cacheTTL,
	}
}

// ListBoards همه بردها همراه با تعداد تاپیک و پست؛ ابتدا از کش
func (s *BoardService) ListBoards(ctx context.Context) ([]*boardPort.BoardDTO, error) {
	if cached, ok, err := s.Cache.GetBoards(ctx); err != nil {
		config.Logger.Warn("⚠️ Could not read board cache", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	return s.RefreshBoards(ctx)
}

// RefreshBoards لیست را از دیتابیس می‌خواند و کش را بازنویسی می‌کند
func (s *BoardService) RefreshBoards(ctx context.Context) ([]*boardPort.BoardDTO, error) {
	boards, err := s.BoardRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(boards))
	for _, b := range boards {
		ids = append(ids, b.ID.String())
	}
	topicCounts, err := s.TopicRepository.CountByBoardIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	postCounts, err := s.PostRepository.CountByBoardIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	dtos := make([]*boardPort.BoardDTO, 0, len(boards))
	for _, b := range boards {
		dto := toBoardDTO(b)
		dto.TopicsCount = topicCounts[dto.ID]
		dto.PostsCount = postCounts[dto.ID]
		dtos = append(dtos, dto)
	}

	if err := s.Cache.SetBoards(ctx, dtos, s.CacheTTL); err != nil {
		config.Logger.Warn("⚠️ Could not write board cache", zap.Error(err))
	}
	return dtos, nil
}

func (s *BoardService) GetBoard(ctx context.Context, id string) (*boardPort.BoardDTO, error) {
	b, err := s.BoardRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBoardDTO(b), nil
}

// GetBoardTopics برد و تاپیک‌های آن، جدیدترین اول
func (s *BoardService) GetBoardTopics(ctx context.Context, id string) (*boardPort.BoardDTO, []*topicPort.TopicDTO, error) {
	b, err := s.BoardRepository.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	topics, err := s.TopicRepository.FindByBoardID(ctx, b.ID.String())
	if err != nil {
		return nil, nil, err
	}

	ids := make([]string, 0, len(topics))
	for _, t := range topics {
		ids = append(ids, t.ID.String())
	}
	postCounts, err := s.PostRepository.CountByTopicIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	dtos := make([]*topicPort.TopicDTO, 0, len(topics))
	for _, t := range topics {
		replies := postCounts[t.ID.String()] - 1
		if replies < 0 {
			replies = 0
		}
		dtos = append(dtos, &topicPort.TopicDTO{
			ID:        t.ID.String(),
			Subject:   t.Subject,
			BoardID:   t.BoardID.String(),
			Starter:   t.Starter.Username,
			Replies:   replies,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		})
	}
	return toBoardDTO(b), dtos, nil
}

// CreateBoard بردها فقط خارج از جریان وب (fixture) ساخته می‌شوند
func (s *BoardService) CreateBoard(ctx context.Context, name, description string) (*boardPort.BoardDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("board name is required")
	}

	if _, err := s.BoardRepository.FindByName(ctx, name); err == nil {
		return nil, boardPort.ErrBoardExists
	} else if !errors.Is(err, boardPort.ErrBoardNotFound) {
		return nil, err
	}

	b, err := s.BoardRepository.Create(ctx, &boardEntity.Board{
		Name:        name,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Invalidate(ctx); err != nil {
		config.Logger.Warn("⚠️ Could not invalidate board cache", zap.Error(err))
	}
	return toBoardDTO(b), nil
}

func toBoardDTO(b *boardEntity.Board) *boardPort.BoardDTO {
	return &boardPort.BoardDTO{
		ID:          b.ID.String(),
		Name:        b.Name,
		Description: b.Description,
	}
}
