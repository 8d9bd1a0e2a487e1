package middleware

import (
	"log/slog"
	"time"

	"blogly/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger is a Fiber middleware that logs every request with method,
// path, status, latency and remote IP, and records its latency.
func RequestLogger(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// Let the app's ErrorHandler write the response so the status is final.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)
		status := c.Response().StatusCode()

		attrs := []slog.Attr{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.String("remote_ip", c.IP()),
		}
		if q := string(c.Request().URI().QueryString()); q != "" {
			attrs = append(attrs, slog.String("query", q))
		}

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}
		slog.LogAttrs(c.UserContext(), level, "request", attrs...)

		if m != nil {
			m.ObserveRequest(c.Method(), c.Route().Path, status, latency)
		}
		return nil
	}
}
