package database

import (
	"context"
	"errors"

	"forum/internal/core/user"
	userPort "forum/internal/ports/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// UserRepositoryDatabase پیاده‌سازی UserRepository برای دیتابیس
type UserRepositoryDatabase struct {
	db *gorm.DB
}

// NewUserRepositoryDatabase سازنده UserRepositoryDatabase
func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := repo.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (*user.User, error) {
	if _, err := uuid.FromString(id); err != nil {
		return nil, userPort.ErrUserNotFound
	}
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("username = ?", username))
}

func (repo *UserRepositoryDatabase) FindFirst(ctx context.Context) (*user.User, error) {
	return repo.first(repo.db.WithContext(ctx).Order("created_at ASC").Order("id ASC"))
}

func (repo *UserRepositoryDatabase) first(q *gorm.DB) (*user.User, error) {
	var u user.User
	if err := q.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userPort.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
