package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strings"
	"time"

	"booking-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// ReplayedHeader marks a response served from a stored idempotent result.
const ReplayedHeader = "Idempotent-Replayed"

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	maxRequestIDLen = 64
)

type requestIDCtxKey struct{}

type Logger struct {
	logger   *slog.Logger
	location *time.Location
}

// NewLogger builds the process logger and installs it as the slog default.
// Records logged with a request context carry that request's id, so use case
// and repository logs line up with the access log.
func NewLogger(cfg config.LogConfig) *Logger {
	location := logLocation(cfg)
	format := cfg.TimeFormat
	if format == "" {
		format = time.RFC3339Nano
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(location).Format(format))
				}
			}
			return a
		},
	}

	var base slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		base = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		base = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(requestIDHandler{Handler: base})
	slog.SetDefault(logger)

	return &Logger{logger: logger, location: location}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logLocation prefers an IANA zone name and falls back to a fixed offset.
func logLocation(cfg config.LogConfig) *time.Location {
	if loc, err := time.LoadLocation(cfg.TimeZone); err == nil {
		return loc
	}
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func LoggingMiddleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = l.newRequestID(start)
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDCtxKey{}, requestID))

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}

		ctx := c.Request.Context()
		l.logger.LogAttrs(ctx, slog.LevelDebug, "request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		// auth runs further down the chain, so the caller is only known now
		if userID, role := extractUserContext(c); userID != "" {
			attrs = append(attrs, slog.String("user_id", userID), slog.String("role", role))
		}
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if c.Writer.Header().Get(ReplayedHeader) != "" {
			attrs = append(attrs, slog.Bool("replayed", true))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(ctx, level, "request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// RequestIDFrom returns the id LoggingMiddleware stored in ctx.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}

func (l *Logger) newRequestID(now time.Time) string {
	stamp := now.In(l.location).Format("20060102150405")

	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return stamp + "-" + strings.TrimLeft(now.Format(".000000000"), ".")
	}
	return stamp + "-" + hex.EncodeToString(buf[:])
}

func extractUserContext(c *gin.Context) (userID, role string) {
	id, ok := GetUserID(c)
	if !ok {
		return "", ""
	}
	r, _ := GetUserRole(c)
	return id.String(), r.String()
}

type requestIDHandler struct {
	slog.Handler
}

func (h requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestIDFrom(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestIDHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h requestIDHandler) WithGroup(name string) slog.Handler {
	return requestIDHandler{Handler: h.Handler.WithGroup(name)}
}
