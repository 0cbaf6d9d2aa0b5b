package httpapi

import (
	stderrors "errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// errorBody is the JSON envelope every failure is rendered as.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
}

// newErrorHandler builds the central fiber error handler. Classified errors
// render their message at their mapped status; anything else becomes an
// opaque 500 so storage details never leak. Password hashes and raw tokens
// are never part of an error payload.
func newErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var richErr *errors.Error
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &richErr):
			if richErr.Code > 0 {
				status = richErr.Code
			}
			if status < fiber.StatusInternalServerError {
				message = richErr.Message
			}
		case stderrors.As(err, &fiberErr):
			// Router-level errors such as 404s and method mismatches.
			status = fiberErr.Code
			message = fiberErr.Message
		}

		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}

		return c.Status(status).JSON(errorBody{Error: errorDetail{Message: message}})
	}
}
