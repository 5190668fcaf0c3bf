package api

import (
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	q queries.LedgerQueries
}

func NewLedgerHandler(q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{q: q}
}

// @Summary Ledger summary
// @Description Revenue, expenses, profit and commission for the period containing anchor
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner ID"
// @Param range query string false "weekly, monthly or annual" default(monthly)
// @Param anchor query string false "Date (YYYY-MM-DD) or RFC3339 timestamp; defaults to now"
// @Param resourceId query string false "Restrict to one resource"
// @Param tz query string false "IANA zone used to read a plain anchor date"
// @Success 200 {object} resdto.LedgerSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /owners/{id}/ledger [get]
func (h *LedgerHandler) Summary(c *gin.Context) {
	ownerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	var q reqdto.LedgerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	params, err := q.ToParams(ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	summary, err := h.q.Summary(c.Request.Context(), actorID, role, params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerSummary(summary))
}
