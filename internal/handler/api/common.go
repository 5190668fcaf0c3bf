package api

import (
	"net/http"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingActor = errs.New("authenticated user missing from context")

// actor reads the caller set by the auth middleware. It aborts with 401 when
// the route was mounted without authentication.
func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	return id, role, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
