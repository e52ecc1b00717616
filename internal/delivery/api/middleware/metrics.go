package middleware

import (
	"time"

	"gateway/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	recorder metrics.Recorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder metrics.Recorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle must run outside the logger middleware, which finalizes the response status.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.recorder.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return err
	}
}
