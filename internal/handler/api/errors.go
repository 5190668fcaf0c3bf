package api

import (
	"errors"
	"net/http"

	"booking-engine/internal/domain/calendar"
	"booking-engine/internal/domain/ledger"
	"booking-engine/internal/domain/reservation"
	"booking-engine/internal/domain/span"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// first match wins
var errorMappings = []errorMapping{
	{calendar.ErrSlotRequired, http.StatusUnprocessableEntity, "Time slot required"},
	{calendar.ErrInvalidSlot, http.StatusUnprocessableEntity, "Invalid time slot"},
	{calendar.ErrConflict, http.StatusConflict, "Requested span overlaps an existing reservation"},
	{calendar.ErrCapacityExceeded, http.StatusConflict, "Capacity exceeded"},
	{calendar.ErrClosedOnDay, http.StatusConflict, "Resource is closed on the requested day"},

	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header required"},
	{errs.ErrIdempotencyMismatch, http.StatusConflict, "Idempotency key reused with a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request is currently being processed"},

	{errs.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrUserInactive, http.StatusForbidden, "Account is inactive"},

	{reservation.ErrInvalidTransition, http.StatusConflict, "Invalid status transition"},
	{reservation.ErrInvalidMileage, http.StatusBadRequest, "Invalid mileage"},
	{reservation.ErrMileageDecreased, http.StatusBadRequest, "Invalid mileage"},
	{reservation.ErrMileageNotApplicable, http.StatusBadRequest, "Invalid mileage"},
	{reservation.ErrInvalidUnits, http.StatusBadRequest, "Invalid units"},

	{span.ErrInvalidSpan, http.StatusBadRequest, "Invalid span"},
	{ledger.ErrInvalidRange, http.StatusBadRequest, "Invalid range"},
	{queries.ErrInvalidAnchor, http.StatusBadRequest, "Invalid anchor"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidQuery, http.StatusBadRequest, "Invalid query"},
	{commands.ErrInvalidExpenseDate, http.StatusBadRequest, "Invalid expense date"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
}

// abortWithUseCaseError maps use case errors to statuses. Rejected bookings
// echo the admission decision in detail unless the rejection itself is broken.
func abortWithUseCaseError(c *gin.Context, err error) {
	status, message := statusFor(err)

	var rejected *commands.RejectedError
	if errors.As(err, &rejected) && status < http.StatusInternalServerError {
		httperr.AbortWithError(c, status, err, message, resdto.FromDecision(rejected.Decision))
		return
	}
	httperr.AbortWithError(c, status, err, message, nil)
}

func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
