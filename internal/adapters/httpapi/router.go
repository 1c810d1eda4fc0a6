package httpapi

import (
	"context"
	"net/http"

	"forum/internal/adapters/httpapi/middleware"
	boardPort "forum/internal/ports/board"
	topicPort "forum/internal/ports/topic"
	userPort "forum/internal/ports/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	csrf "github.com/utrack/gin-csrf"
)

const sessionName = "forum_session"

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, username, email, password string) (*userPort.UserDTO, error)
	GetProfile(ctx context.Context, id string) (*userPort.UserDTO, error)
	ParseToken(token string) (string, error)
}

type BoardUseCase interface {
	ListBoards(ctx context.Context) ([]*boardPort.BoardDTO, error)
	GetBoard(ctx context.Context, id string) (*boardPort.BoardDTO, error)
	GetBoardTopics(ctx context.Context, id string) (*boardPort.BoardDTO, []*topicPort.TopicDTO, error)
}

type TopicUseCase interface {
	CreateTopic(ctx context.Context, boardID, subject, message, requesterID string) (*topicPort.TopicDTO, error)
}

// Options تنظیمات وب که از config می‌آیند
type Options struct {
	SessionSecret string
	SSL           bool
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	boardUC BoardUseCase,
	topicUC TopicUseCase,
	userUC UserUseCase,
	opts Options,
) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(loadTemplates())
	r.Use(secure.New(secureConfig(opts.SSL)))

	bc := NewBoardController(boardUC)
	tc := NewTopicController(boardUC, topicUC)
	uc := NewUserController(userUC)

	// صفحات HTML: سشن کوکی، توکن CSRF و احراز هویت اختیاری
	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   opts.SSL,
		SameSite: http.SameSiteLaxMode,
	})
	pages := r.Group("/")
	pages.Use(
		sessions.Sessions(sessionName, store),
		csrf.Middleware(csrf.Options{
			Secret: opts.SessionSecret,
			ErrorFunc: func(c *gin.Context) {
				renderError(c, http.StatusForbidden, "CSRF token missing or incorrect.")
				c.Abort()
			},
		}),
		middleware.OptionalAuthMiddleware(userUC),
	)
	pages.GET("/", bc.Home)
	pages.GET("/boards/:id/", bc.BoardTopics)
	pages.GET("/boards/:id/new/", tc.NewTopic)
	pages.POST("/boards/:id/new/", tc.CreateTopic)

	// API JSON بدون CSRF
	api := r.Group("/api")
	api.Use(cors.Default())
	api.POST("/register", uc.RegisterUser)
	api.POST("/login", uc.LoginUser)
	api.GET("/me", middleware.JWTAuthMiddleware(userUC), uc.Me)

	r.NoRoute(func(c *gin.Context) {
		renderError(c, http.StatusNotFound, "Page not found.")
	})
	return r
}

func secureConfig(ssl bool) secure.Config {
	cfg := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	// هدرهای SSL فقط وقتی خود برنامه TLS دارد (نه پشت reverse proxy)
	if ssl {
		cfg.SSLRedirect = true
		cfg.STSSeconds = 31536000
		cfg.STSIncludeSubdomains = true
	}
	return cfg
}
