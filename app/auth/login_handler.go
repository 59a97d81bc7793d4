package auth

import (
	"blessindo/pkg/auth"
	"blessindo/pkg/httperror"
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type LoginHandler struct {
	credentials auth.Credentials
	issuer      *auth.TokenIssuer
}

func NewLoginHandler(credentials auth.Credentials, issuer *auth.TokenIssuer) *LoginHandler {
	return &LoginHandler{
		credentials: credentials,
		issuer:      issuer,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type User struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (h LoginHandler) Handle(_ context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, httperror.FromValidation(err, "auth.login.validation_failed", "Username and password are required")
	}

	if !h.credentials.Match(req.Username, req.Password) {
		zap.L().Warn("Rejected admin login", zap.String("username", req.Username))
		return nil, httperror.Unauthorized("auth.login.invalid_credentials", "Invalid credentials", nil)
	}

	token, err := h.issuer.Issue(h.credentials.Username)
	if err != nil {
		return nil, httperror.InternalServerError("auth.login.failed", "Internal server error", err.Error())
	}

	return &LoginResponse{
		Token: token,
		User:  User{Username: h.credentials.Username},
	}, nil
}
