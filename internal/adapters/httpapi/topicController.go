package httpapi

import (
	"errors"
	"net/http"

	"forum/internal/adapters/httpapi/middleware"
	"forum/internal/core/post"
	"forum/internal/core/topic"
	boardPort "forum/internal/ports/board"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	csrf "github.com/utrack/gin-csrf"
)

type TopicController struct {
	bc BoardUseCase
	tc TopicUseCase
}

func NewTopicController(bc BoardUseCase, tc TopicUseCase) *TopicController {
	return &TopicController{bc: bc, tc: tc}
}

// NewTopic فرم خالی ساخت تاپیک
func (ctl *TopicController) NewTopic(c *gin.Context) {
	board, err := ctl.bc.GetBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	renderNewTopic(c, http.StatusOK, board, &NewTopicForm{}, nil)
}

// CreateTopic ارسال فرم: اعتبارسنجی، ساخت تاپیک و پست اول، سپس redirect
func (ctl *TopicController) CreateTopic(c *gin.Context) {
	board, err := ctl.bc.GetBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	var form NewTopicForm
	if err := c.ShouldBind(&form); err != nil {
		// خطای اعتبارسنجی را Validate پایین گزارش می‌کند؛ بقیه یعنی body خراب
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			renderError(c, http.StatusBadRequest, "Malformed form data.")
			return
		}
	}
	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		renderNewTopic(c, http.StatusOK, board, &form, fieldErrors)
		return
	}

	requesterID := c.GetString(middleware.UserIDKey)
	if _, err := ctl.tc.CreateTopic(c.Request.Context(), board.ID, form.Subject, form.Message, requesterID); err != nil {
		handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, boardTopicsURL(board.ID))
}

func renderNewTopic(c *gin.Context, status int, board *boardPort.BoardDTO, form *NewTopicForm, fieldErrors map[string]string) {
	c.HTML(status, "new_topic.html", NewTopicPageData{
		PageData:         PageData{Title: "Start a New Topic"},
		Board:            board,
		Form:             form,
		Errors:           fieldErrors,
		CSRFToken:        csrf.GetToken(c),
		MaxSubjectLength: topic.MaxSubjectLength,
		MaxMessageLength: post.MaxMessageLength,
	})
}
