package server

import (
	"blessindo/app/upload"
	"blessindo/pkg/httperror"
	"blessindo/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	messageRouteNotFound = "Route not found"
	messageInternal      = "Internal server error"
)

func writeError(c *fiber.Ctx, err error) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		if httpErr.Status >= fiber.StatusInternalServerError {
			zap.L().Error("Handler returned server error",
				zap.String("code", httpErr.Code),
				zap.Any("details", httpErr.Details),
				zap.Error(httpErr),
			)
		} else {
			zap.L().Warn("Handler returned client error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		}

		return c.Status(httpErr.Status).JSON(response.Fail(httpErr.Message))
	}

	zap.L().Error("Unhandled error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(response.Fail(messageInternal))
}

// newErrorHandler builds the last stop for errors the handlers did not map,
// mostly those raised by fiber itself.
func newErrorHandler(maxUploadBytes int64) fiber.ErrorHandler {
	tooLarge := upload.TooLargeMessage(maxUploadBytes)

	return func(c *fiber.Ctx, err error) error {
		return handleError(c, err, tooLarge)
	}
}

func handleError(c *fiber.Ctx, err error, tooLarge string) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusRequestEntityTooLarge:
			zap.L().Warn("Rejected oversized request", zap.String("path", c.Path()))
			return c.Status(fiber.StatusBadRequest).JSON(response.Fail(tooLarge))
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			return c.Status(fiber.StatusNotFound).JSON(response.Fail(messageRouteNotFound))
		}

		if fiberErr.Code < fiber.StatusInternalServerError {
			zap.L().Warn("Request rejected", zap.Int("status", fiberErr.Code), zap.Error(err))
			return c.Status(fiberErr.Code).JSON(response.Fail(fiberErr.Message))
		}
	}

	return writeError(c, err)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(response.Fail(messageRouteNotFound))
}
