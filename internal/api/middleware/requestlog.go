package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthPaths are probe endpoints whose successful requests are noisy.
// Only the first success after startup (or after a failure) is logged;
// failures are always logged at WARN.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Repeated successful health probes
// are suppressed to keep kubelet traffic out of the logs.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu          sync.Mutex
		lastHealthy = map[string]bool{}
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			success := status >= http.StatusOK && status < http.StatusMultipleChoices

			level := slog.LevelInfo
			if _, health := healthPaths[path]; health {
				mu.Lock()
				wasHealthy := lastHealthy[path]
				lastHealthy[path] = success
				mu.Unlock()

				if success && wasHealthy {
					return err
				}
				if !success {
					level = slog.LevelWarn
				}
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}
