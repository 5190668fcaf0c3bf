package api

import (
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	cmds commands.ExpenseCommands
}

func NewExpenseHandler(cmds commands.ExpenseCommands) *ExpenseHandler {
	return &ExpenseHandler{cmds: cmds}
}

// @Summary Record expense
// @Description Record an owner-level or resource-level expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordExpenseRequest true "Expense"
// @Success 201 {object} resdto.ExpenseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /expenses [post]
func (h *ExpenseHandler) Record(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.RecordExpense(c.Request.Context(), req.ToCommand(), actorID, role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromExpenseView(view))
}
