package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BoardController struct{ bc BoardUseCase }

func NewBoardController(bc BoardUseCase) *BoardController { return &BoardController{bc: bc} }

// Home لیست همه بردها
func (ctl *BoardController) Home(c *gin.Context) {
	boards, err := ctl.bc.ListBoards(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.HTML(http.StatusOK, "home.html", HomePageData{
		PageData: PageData{Title: "Boards"},
		Boards:   boards,
	})
}

// BoardTopics تاپیک‌های یک برد؛ برد ناموجود 404
func (ctl *BoardController) BoardTopics(c *gin.Context) {
	board, topics, err := ctl.bc.GetBoardTopics(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.HTML(http.StatusOK, "topics.html", BoardTopicsPageData{
		PageData: PageData{Title: board.Name},
		Board:    board,
		Topics:   topics,
	})
}
