package api

import (
	"net/http"

	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	q queries.UserQueries
}

func NewUserHandler(q queries.UserQueries) *UserHandler {
	return &UserHandler{q: q}
}

// @Summary Get current user
// @Description Get the authenticated user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
