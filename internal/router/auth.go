package router

import (
	"net/http"

	"github.com/deppfellow/activity-api/internal/handler"
	"github.com/deppfellow/activity-api/internal/model/user"
	"github.com/labstack/echo/v4"
)

// registerAuthRoutes registers the public account endpoints.
func registerAuthRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/register", handler.Handle(
		h.Auth.Handler,
		h.Auth.Register,
		http.StatusCreated,
		&user.RegisterRequest{},
	))

	r.POST("/login", handler.Handle(
		h.Auth.Handler,
		h.Auth.Login,
		http.StatusOK,
		&user.LoginRequest{},
	))
}
