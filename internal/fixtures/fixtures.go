// Package fixtures بردها و کاربران اولیه را از فایل YAML بارگذاری می‌کند.
// بردها فقط از این مسیر (خارج از وب) ساخته می‌شوند.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"os"

	"forum/internal/config"
	boardPort "forum/internal/ports/board"
	userPort "forum/internal/ports/user"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Board struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type User struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type File struct {
	Users  []User  `yaml:"users"`
	Boards []Board `yaml:"boards"`
}

type BoardCreator interface {
	CreateBoard(ctx context.Context, name, description string) (*boardPort.BoardDTO, error)
}

type UserRegistrar interface {
	RegisterUser(ctx context.Context, username, email, password string) (*userPort.UserDTO, error)
}

// Result تعداد رکوردهای ساخته‌شده و ردشده (از قبل موجود)
type Result struct {
	BoardsCreated int
	BoardsSkipped int
	UsersCreated  int
	UsersSkipped  int
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", path, err)
	}
	return &f, nil
}

// Apply کاربران را قبل از بردها می‌سازد؛ اجرای دوباره چیزی را تکرار نمی‌کند
func Apply(ctx context.Context, f *File, boards BoardCreator, users UserRegistrar) (*Result, error) {
	res := &Result{}
	for _, u := range f.Users {
		_, err := users.RegisterUser(ctx, u.Username, u.Email, u.Password)
		switch {
		case errors.Is(err, userPort.ErrUserExists):
			res.UsersSkipped++
		case err != nil:
			return res, fmt.Errorf("user %q: %w", u.Username, err)
		default:
			res.UsersCreated++
		}
	}
	for _, b := range f.Boards {
		_, err := boards.CreateBoard(ctx, b.Name, b.Description)
		switch {
		case errors.Is(err, boardPort.ErrBoardExists):
			res.BoardsSkipped++
		case err != nil:
			return res, fmt.Errorf("board %q: %w", b.Name, err)
		default:
			res.BoardsCreated++
		}
	}
	config.Logger.Info("✅ Fixtures applied",
		zap.Int("boardsCreated", res.BoardsCreated),
		zap.Int("boardsSkipped", res.BoardsSkipped),
		zap.Int("usersCreated", res.UsersCreated),
		zap.Int("usersSkipped", res.UsersSkipped))
	return res, nil
}
