package middleware

import (
	"log/slog"
	"slices"

	"booking-engine/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware applies the configured policy. Browser clients cannot
// book or detect replays without the idempotency headers, so those are
// always allowed and exposed on top of the configuration.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeaders(cfg.AllowHeaders, "Idempotency-Key", requestIDHeader),
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, ReplayedHeader, requestIDHeader, "Location"),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func withHeaders(base []string, required ...string) []string {
	out := slices.Clone(base)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
