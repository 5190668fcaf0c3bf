package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Resource    *api.ResourceHandler
	Reservation *api.ReservationHandler
	Expense     *api.ExpenseHandler
	Ledger      *api.LedgerHandler
	User        *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ownerOrAbove := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOwner)}

	apiGroup := engine.Group("/api")
	{
		resources := apiGroup.Group("/resources")
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Resource.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Resource.Availability},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Resource.Quote},
			})

			authRequired := resources.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Resource.Register, Mw: ownerOrAbove},
			})
		}

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.User.Me},
				{Method: http.MethodPost, Path: "/expenses", Handler: h.Expense.Record, Mw: ownerOrAbove},
				{Method: http.MethodGet, Path: "/owners/:id/resources", Handler: h.Resource.ListByOwner, Mw: ownerOrAbove},
				{Method: http.MethodGet, Path: "/owners/:id/ledger", Handler: h.Ledger.Summary, Mw: ownerOrAbove},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm, Mw: ownerOrAbove},
				{Method: http.MethodPost, Path: "/:id/pickup", Handler: h.Reservation.Pickup, Mw: ownerOrAbove},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Reservation.Return, Mw: ownerOrAbove},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
