package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/metrics"
)

// metricsSkipPaths defines URL paths excluded from HTTP request metrics.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// healthGauges maps health check paths to their up/down gauge.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status,
// labelled by route pattern so hall and video IDs do not create new series.
// Health check and scrape paths are excluded; health check paths update up/down gauges
// instead. Requests that matched no route share the label "other", and the
// Swagger assets share "/swagger".
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			urlPath := c.Request().URL.Path
			if _, skip := metricsSkipPaths[urlPath]; skip {
				err := next(c)
				updateHealthGauge(urlPath, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
				status = he.Code
			}

			route := routeLabel(c.Path())
			method := c.Request().Method
			code := strconv.Itoa(status)

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, code).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, code).
				Inc()

			return err
		}
	}
}

func routeLabel(route string) string {
	switch {
	case route == "" || route == "/*":
		return "other"
	case strings.HasPrefix(route, "/swagger"):
		return "/swagger"
	default:
		return route
	}
}

// updateHealthGauge sets the gauge for a health path to 1 (success) or 0 (failure).
func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
