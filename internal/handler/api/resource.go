package api

import (
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	cmds         commands.ResourceCommands
	q            queries.ResourceQueries
	availability queries.AvailabilityQueries
}

func NewResourceHandler(cmds commands.ResourceCommands, q queries.ResourceQueries, availability queries.AvailabilityQueries) *ResourceHandler {
	return &ResourceHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Get resource
// @Description Get a bookable resource with its rate card
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Check availability
// @Description Pre-flight admission check; nothing is booked
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param start query string true "Start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "End, exclusive (optional for attractions)"
// @Param units query int false "Units requested" default(1)
// @Param slot query string false "Time slot name"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.SpanQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.availability.Check(c.Request.Context(), q.ToParams(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Quote price
// @Description Price a span without booking it
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param start query string true "Start (YYYY-MM-DD or RFC3339)"
// @Param end query string false "End, exclusive (optional for attractions)"
// @Param units query int false "Tickets for attractions" default(1)
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/quote [get]
func (h *ResourceHandler) Quote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.SpanQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.availability.Quote(c.Request.Context(), q.ToParams(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Register resource
// @Description Register a vehicle or attraction for the caller (admins may pass ownerId)
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterResourceRequest true "Resource"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /resources [post]
func (h *ResourceHandler) Register(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.RegisterResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.RegisterResource(c.Request.Context(), cmd, actorID, role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/resources/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromResourceView(view))
}

// @Summary List owner resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner ID"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /owners/{id}/resources [get]
func (h *ResourceHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), actorID, role, ownerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}
