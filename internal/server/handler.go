package server

import (
	"blessindo/app/upload"
	"blessindo/pkg/httperror"
	"blessindo/pkg/response"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Request any
type Response any

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, error)
}

// handle binds body, path and query into R, runs the handler and wraps the
// result in the response envelope with message.
func handle[R Request, Res Response](handler HandlerInterface[R, Res], message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
				return writeError(c, httperror.BadRequest(
					"request.invalid_body",
					"Invalid body",
					fiber.Map{"error": err.Error()},
				))
			}
		}

		if err := c.ParamsParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_path_params",
				"Invalid path params",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.QueryParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_query_params",
				"Invalid query params",
				fiber.Map{"error": err.Error()},
			))
		}

		res, err := handler.Handle(c.UserContext(), &req)
		if err != nil {
			return writeError(c, err)
		}

		if res == nil {
			return c.JSON(response.OK(message, nil))
		}
		return c.JSON(response.OK(message, res))
	}
}

// handleUpload reads the handler's multipart field. A request without that
// field reaches the handler with a nil file.
func handleUpload(handler *upload.UploadImageHandler, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := upload.UploadImageRequest{}
		if file, err := c.FormFile(handler.Field()); err == nil {
			req.File = file
		}

		res, err := handler.Handle(c.UserContext(), &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(response.OK(message, res))
	}
}
