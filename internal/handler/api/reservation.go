package api

import (
	"net/http"

	"booking-engine/internal/domain/user"
	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var errInvalidIdempotencyKey = errs.New("invalid idempotency key format")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Create a reservation. Retries with the same Idempotency-Key replay the first result.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key (UUID)"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed result"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}

	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToCommand(), userID, key)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+result.Reservation.ID.String())
	if result.IsReplayed {
		c.Header(middleware.ReplayedHeader, "true")
		c.JSON(http.StatusOK, resdto.FromReservationView(result.Reservation))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(result.Reservation))
}

// @Summary Get reservation
// @Description Visible to the booking user, the resource owner and admins
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actorID, role, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description Newest first, keyset paginated
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor from nextCursor"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, cursor, q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationPage(items, next))
}

// @Summary Cancel reservation
// @Description The booking user, the resource owner or an admin may cancel
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id, actorID uuid.UUID, role user.Role, _ *int64) (*queries.ReservationView, error) {
		return h.cmds.Cancel(c.Request.Context(), id, actorID, role)
	})
}

// @Summary Confirm reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id, actorID uuid.UUID, role user.Role, _ *int64) (*queries.ReservationView, error) {
		return h.cmds.Confirm(c.Request.Context(), id, actorID, role)
	})
}

// @Summary Hand over a rental
// @Description confirmed to active; vehicles record the odometer reading
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest false "Mileage at pickup"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/pickup [post]
func (h *ReservationHandler) Pickup(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id, actorID uuid.UUID, role user.Role, mileage *int64) (*queries.ReservationView, error) {
		return h.cmds.StartRental(c.Request.Context(), id, mileage, actorID, role)
	})
}

// @Summary Return a rental
// @Description active to completed; vehicles record the odometer reading
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest false "Mileage at return"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/return [post]
func (h *ReservationHandler) Return(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id, actorID uuid.UUID, role user.Role, mileage *int64) (*queries.ReservationView, error) {
		return h.cmds.Complete(c.Request.Context(), id, mileage, actorID, role)
	})
}

type transitionFunc func(c *gin.Context, id, actorID uuid.UUID, role user.Role, mileage *int64) (*queries.ReservationView, error)

func (h *ReservationHandler) transition(c *gin.Context, apply transitionFunc) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	// the body is optional
	var req reqdto.TransitionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	view, err := apply(c, id, actorID, role, req.Mileage)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidIdempotencyKey
	}
	return key, nil
}
