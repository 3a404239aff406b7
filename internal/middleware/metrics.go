package middleware

import (
	"errors"
	"time"

	"gudang/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// unmatchedRoute labels requests that reached the 404 fallback, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics is a Fiber middleware that records request counts and latency.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.RequestStarted()

		err := c.Next()

		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = unmatchedRoute
		}
		m.RequestFinished(c.Method(), route, status, time.Since(start))
		return err
	}
}
