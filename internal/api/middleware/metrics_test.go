package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/RaviKishore94/hofvidz-3.0project/internal/api/middleware"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/metrics"
)

func counterValue(t *testing.T, method, route, status string) float64 {
	t.Helper()

	counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(method, route, status)
	require.NoError(t, err)
	m := &io_prometheus_client.Metric{}
	require.NoError(t, counter.Write(m))
	return m.GetCounter().GetValue()
}

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "search",
			method: http.MethodGet,
			route:  "/video/search/",
			target: "/video/search/?search_term=cats",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]any{"items": []any{}})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "hall page not found",
			method: http.MethodGet,
			route:  "/halls/:id",
			target: "/halls/0b9f3c52-7f9e-4d5b-9a51-2d8c2f0e6a11",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "add video",
			method: http.MethodPost,
			route:  "/api/v1/halls/:id/videos",
			target: "/api/v1/halls/0b9f3c52-7f9e-4d5b-9a51-2d8c2f0e6a11/videos",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusCreated)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			statusStr := strconv.Itoa(tt.wantStatus)
			before := counterValue(t, tt.method, tt.route, statusStr)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			// Labelled by route pattern, not by the concrete path.
			assert.InDelta(t, before+1, counterValue(t, tt.method, tt.route, statusStr), 0.001)

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HallIDsShareOneSeries(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/halls/:id/add", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	before := counterValue(t, http.MethodGet, "/halls/:id/add", "204")
	for _, id := range []string{"h1", "h2", "h3"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/halls/"+id+"/add", http.NoBody))
	}
	assert.InDelta(t, before+3, counterValue(t, http.MethodGet, "/halls/:id/add", "204"), 0.001)

	_, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(http.MethodGet, "/halls/h1/add", "204")
	require.NoError(t, err)
	assert.Zero(t, counterValue(t, http.MethodGet, "/halls/h1/add", "204"))
}

func TestMetricsMiddleware_ScrapeNotCounted(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/metrics", func(c echo.Context) error {
		return c.String(http.StatusOK, "# metrics")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Zero(t, counterValue(t, http.MethodGet, "/metrics", "200"))
}

func TestMetricsMiddleware_UnmatchedRoutesShareLabel(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/*", func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	before := counterValue(t, http.MethodGet, "other", "404")
	for _, p := range []string{"/wp-login.php", "/.env", "/cgi-bin/test"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, http.NoBody))
	}
	assert.InDelta(t, before+3, counterValue(t, http.MethodGet, "other", "404"), 0.001)
	assert.Zero(t, counterValue(t, http.MethodGet, "/wp-login.php", "404"))
}

func TestMetricsMiddleware_SwaggerAssetsShareLabel(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	for _, p := range []string{"/swagger/swagger.json", "/swagger/index.html"} {
		e.GET(p, func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	}

	before := counterValue(t, http.MethodGet, "/swagger", "200")
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/swagger/swagger.json", http.NoBody))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/swagger/index.html", http.NoBody))
	assert.InDelta(t, before+2, counterValue(t, http.MethodGet, "/swagger", "200"), 0.001)
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	healthy := true
	e.GET("/readyz", func(c echo.Context) error {
		if healthy {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	m := &io_prometheus_client.Metric{}
	require.NoError(t, metrics.ReadyzUp.Write(m))
	assert.InDelta(t, 1.0, m.GetGauge().GetValue(), 0.001)

	healthy = false
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	require.NoError(t, metrics.ReadyzUp.Write(m))
	assert.InDelta(t, 0.0, m.GetGauge().GetValue(), 0.001)
}
