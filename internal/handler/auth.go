package handler

import (
	"github.com/deppfellow/activity-api/internal/model/user"
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/deppfellow/activity-api/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context, req *user.RegisterRequest) (*user.RegisterResponse, error) {
	summary, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	return &user.RegisterResponse{
		Message: "Registration successful",
		User:    summary,
	}, nil
}

func (h *AuthHandler) Login(c echo.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	signed, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	return &user.LoginResponse{
		Message:   "Login successful",
		Token:     signed,
		ExpiresIn: h.authService.TokenTTLSeconds(),
	}, nil
}
