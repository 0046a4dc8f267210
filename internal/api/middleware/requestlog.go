// Package middleware provides Echo middleware for the hofvidz server.
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

// healthPaths are polled by orchestrators. A successful check is logged once
// and then only again after it has failed.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Server errors are logged at error
// level, client errors and failed health checks at warn level.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var healthOK sync.Map // path -> bool, last check was a success

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

			_, health := healthPaths[path]
			if health {
				ok := status < http.StatusBadRequest
				prev, seen := healthOK.Swap(path, ok)
				if ok && seen && prev.(bool) {
					return err
				}
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError && !health:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
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
