//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/jwt"
	"booking-engine/internal/testutil/httptest"
	"booking-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

func newAuth() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(secret, time.Hour)))
}

func token(t *testing.T, id uuid.UUID, role user.Role) string {
	t.Helper()
	tok, err := jwt.NewService(secret, time.Hour).GenerateToken(id, role)
	require.NoError(t, err)
	return tok
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	router := gin.New()
	router.GET("/me", newAuth().RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
	})

	t.Run("success: bearer token populates the context", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token(t, userID, user.RoleCustomer))

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["id"])
		assert.Equal(t, "customer", body["role"])
	})

	testCases := []struct {
		name      string
		token     string
		expectMsg string
	}{
		{name: "error: missing token", token: "", expectMsg: "Access token required"},
		{name: "error: garbage token", token: "not.a.jwt", expectMsg: "Invalid or expired token"},
		{
			name: "error: token signed with another key",
			token: func() string {
				tok, _ := jwt.NewService("other", time.Hour).GenerateToken(userID, user.RoleOwner)
				return tok
			}(),
			expectMsg: "Invalid or expired token",
		},
		{
			name: "error: expired token",
			token: func() string {
				tok, _ := jwt.NewService(secret, -time.Minute).GenerateToken(userID, user.RoleOwner)
				return tok
			}(),
			expectMsg: "Invalid or expired token",
		},
		{name: "error: unknown role", token: token(t, userID, user.Role("superuser")), expectMsg: "Invalid or expired token"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tc.token)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tc.expectMsg)
		})
	}
}

func TestRequireRoleAtLeast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := newAuth()

	router := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	router.POST("/resources", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleOwner), ok)
	router.POST("/unguarded", auth.RequireRoleAtLeast(user.RoleOwner), ok)

	testCases := []struct {
		role       user.Role
		expectCode int
	}{
		{role: user.RoleCustomer, expectCode: http.StatusForbidden},
		{role: user.RoleOwner, expectCode: http.StatusNoContent},
		{role: user.RoleAdmin, expectCode: http.StatusNoContent},
	}
	for _, tc := range testCases {
		t.Run(tc.role.String(), func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/resources", nil, token(t, uuid.New(), tc.role))
			assert.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
			if tc.expectCode == http.StatusForbidden {
				httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
			}
		})
	}

	t.Run("mounted without authentication", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/unguarded", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339})

	router := gin.New()
	router.Use(middleware.LoggingMiddleware(logger))
	router.GET("/ping", func(c *gin.Context) {
		if middleware.GetRequestID(c) != middleware.RequestIDFrom(c.Request.Context()) {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, middleware.RequestIDFrom(c.Request.Context()))
	})

	t.Run("generates an id when none is sent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, rec.Header().Get("X-Request-ID"))
	})

	t.Run("honours a caller supplied id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil, "",
			map[string]string{"X-Request-ID": "trace-123"})
		assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "trace-123", rec.Body.String())
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		long := strings.Repeat("x", 65)
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil, "",
			map[string]string{"X-Request-ID": long})
		got := rec.Header().Get("X-Request-ID")
		assert.NotEmpty(t, got)
		assert.NotEqual(t, long, got)
		assert.Equal(t, got, rec.Body.String())
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/boom", func(*gin.Context) { panic("unexpected") })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestCORSMiddleware_ExposesIdempotencyHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}

	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil, "",
		map[string]string{"Origin": "http://localhost:3000"})

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "idempotent-replayed")
	assert.Contains(t, exposed, "x-request-id")
}
