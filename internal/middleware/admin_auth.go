package middleware

import (
	"blessindo/pkg/auth"
	"blessindo/pkg/httperror"
	"blessindo/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocalUsername is the fiber.Ctx local holding the authenticated admin.
const LocalUsername = "username"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// NewAdminAuthMiddleware requires a valid "Authorization: Bearer <token>"
// header. A missing token is rejected with 401, a bad or expired one with 403.
func NewAdminAuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return reject(c, httperror.Unauthorized(
				"auth.token.missing",
				"Access token required",
				nil,
			))
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			zap.L().Warn("Rejected admin token", zap.String("path", c.Path()), zap.Error(err))
			return reject(c, httperror.Forbidden(
				"auth.token.invalid",
				"Invalid or expired token",
				nil,
			))
		}

		c.Locals(LocalUsername, claims.Username)
		c.SetUserContext(auth.WithUsername(c.UserContext(), claims.Username))
		return c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func reject(c *fiber.Ctx, err *httperror.Error) error {
	return c.Status(err.Status).JSON(response.Fail(err.Message))
}
