package httpapi

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"forum/internal/config"
	boardPort "forum/internal/ports/board"
	topicPort "forum/internal/ports/topic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData داده مشترک همه صفحات
type PageData struct {
	Title string
}

type HomePageData struct {
	PageData
	Boards []*boardPort.BoardDTO
}

type BoardTopicsPageData struct {
	PageData
	Board  *boardPort.BoardDTO
	Topics []*topicPort.TopicDTO
}

type NewTopicPageData struct {
	PageData
	Board            *boardPort.BoardDTO
	Form             *NewTopicForm
	Errors           map[string]string
	CSRFToken        string
	MaxSubjectLength int
	MaxMessageLength int
}

type ErrorPageData struct {
	PageData
	Status  int
	Message string
}

func homeURL() string { return "/" }

func boardTopicsURL(boardID string) string { return "/boards/" + boardID + "/" }

func newTopicURL(boardID string) string { return "/boards/" + boardID + "/new/" }

// loadTemplates همه قالب‌های embed شده را یک بار parse می‌کند
func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"homeURL":        homeURL,
		"boardTopicsURL": boardTopicsURL,
		"newTopicURL":    newTopicURL,
	}).ParseFS(templatesFS, "templates/*.html"))
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", ErrorPageData{
		PageData: PageData{Title: http.StatusText(status)},
		Status:   status,
		Message:  message,
	})
}

// handleError نگاشت خطاهای سرویس به وضعیت HTTP
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, boardPort.ErrBoardNotFound):
		renderError(c, http.StatusNotFound, "Board not found.")
	case errors.Is(err, topicPort.ErrNoAuthor):
		renderError(c, http.StatusForbidden, "There is no user to author this topic.")
	default:
		config.Logger.Error("❌ Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		renderError(c, http.StatusInternalServerError, "Something went wrong.")
	}
}
