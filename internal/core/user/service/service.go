package userapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"forum/internal/config"
	userEntity "forum/internal/core/user"
	userPort "forum/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer = "forum"
	tokenTTL    = 24 * time.Hour
)

// UserService سرویس مدیریت کاربران
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// LoginUser ورود کاربر و صدور توکن JWT
func (s *UserService) LoginUser(ctx context.Context, username string, password string) (*userPort.LoginResponse, error) {
	// پیدا کردن کاربر با یوزرنیم
	user, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		config.Logger.Info("login: user lookup failed", zap.String("username", username), zap.Error(err))
		return nil, userPort.ErrInvalidCredentials
	}

	// مقایسه پسورد هش‌شده
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		config.Logger.Info("login: invalid password", zap.String("username", username))
		return nil, userPort.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		config.Logger.Error("❌ Error generating JWT", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// generateJWT برای تولید توکن JWT
func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    tokenIssuer,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// RegisterUser ثبت‌نام کاربر جدید
func (s *UserService) RegisterUser(ctx context.Context, username, email, password string) (*userPort.UserDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	// بررسی اینکه آیا کاربر با این یوزرنیم قبلاً ثبت شده است
	existing, err := s.UserRepository.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, userPort.ErrUserExists
	}
	if err != nil && !errors.Is(err, userPort.ErrUserNotFound) {
		return nil, err
	}

	// هش کردن پسورد
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		Username: username,
		Email:    strings.TrimSpace(email),
		Password: string(hashedPassword),
	})
	if err != nil {
		return nil, err
	}

	config.Logger.Info("👤 Registered user", zap.String("username", u.Username))
	return toUserDTO(u), nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(u), nil
}

// ParseToken توکن را اعتبارسنجی کرده و شناسه کاربر را برمی‌گرداند
func (s *UserService) ParseToken(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtKey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}
