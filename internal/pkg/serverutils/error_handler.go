package serverutils

import (
	"errors"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "something went wrong, please try again"

// ErrorHandlerMiddleware turns errors returned by handlers into the standard
// envelope. Unknown errors are logged and reported as a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := StatusFor(err)
		if code == fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err,
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

// StatusFor maps a domain error to its HTTP status and client message.
func StatusFor(err error) (int, string) {
	var (
		duplicate  *dto.DuplicateSwipeError
		forbidden  *dto.ForbiddenError
		notFound   *dto.NotFoundError
		validation *dto.ValidationError
		fiberErr   *fiber.Error
	)

	switch {
	case errors.As(err, &duplicate):
		return fiber.StatusConflict, duplicate.Error()
	case errors.As(err, &forbidden):
		return fiber.StatusForbidden, forbidden.Error()
	case errors.As(err, &notFound):
		return fiber.StatusNotFound, notFound.Error()
	case errors.As(err, &validation):
		return fiber.StatusBadRequest, validation.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	}
	return fiber.StatusInternalServerError, internalErrorMessage
}
