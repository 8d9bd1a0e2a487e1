package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"blogly/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-wide Fiber error handler. It answers with
// {"error": {"type", "message", "field"}} and the AppError's status; anything
// that is not an AppError becomes a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiber.Map{"type": "http_error", "message": fiberErr.Message},
		})
	}

	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.NewInternal(err)
	}
	if appErr.Code >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
	}
	return c.Status(appErr.Code).JSON(fiber.Map{"error": appErr})
}

// parseID reads a positive numeric route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.NewBadRequest("invalid " + name + ": " + raw)
	}
	return uint(id), nil
}

// parseBody binds a JSON or form body into out.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		slog.Debug("error parsing request body", slog.Any("error", err))
		return apperror.NewBadRequest("Invalid request body")
	}
	return nil
}
