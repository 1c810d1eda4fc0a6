package database

import (
	"context"
	"errors"

	"forum/internal/core/board"
	boardPort "forum/internal/ports/board"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// BoardRepositoryDatabase پیاده‌سازی BoardRepository برای دیتابیس
type BoardRepositoryDatabase struct {
	db *gorm.DB
}

// NewBoardRepositoryDatabase سازنده BoardRepositoryDatabase
func NewBoardRepositoryDatabase(db *gorm.DB) *BoardRepositoryDatabase {
	return &BoardRepositoryDatabase{db: db}
}

func (repo *BoardRepositoryDatabase) Create(ctx context.Context, b *board.Board) (*board.Board, error) {
	if err := repo.db.WithContext(ctx).Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (repo *BoardRepositoryDatabase) FindAll(ctx context.Context) ([]*board.Board, error) {
	var boards []*board.Board
	if err := repo.db.WithContext(ctx).Order("name").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (repo *BoardRepositoryDatabase) FindByID(ctx context.Context, id string) (*board.Board, error) {
	// شناسه نامعتبر هم مثل برد ناموجود است
	if _, err := uuid.FromString(id); err != nil {
		return nil, boardPort.ErrBoardNotFound
	}
	var b board.Board
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, boardPort.ErrBoardNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (repo *BoardRepositoryDatabase) FindByName(ctx context.Context, name string) (*board.Board, error) {
	var b board.Board
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, boardPort.ErrBoardNotFound
		}
		return nil, err
	}
	return &b, nil
}
