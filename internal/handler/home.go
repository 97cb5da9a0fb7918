package handler

import (
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HomeResponse is the body of the root endpoint.
type HomeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Guide   string `json:"guide"`
}

// HomeRequest carries no input; GET / accepts anything.
type HomeRequest struct{}

func (r *HomeRequest) Validate() error { return nil }

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{Handler: NewHandler(s)}
}

func (h *HomeHandler) Welcome(c echo.Context, _ *HomeRequest) (*HomeResponse, error) {
	return &HomeResponse{
		Message: "Welcome to the Student Activity API",
		Status:  "running",
		Guide:   "Register at POST /register, log in at POST /login, then send the token as 'Authorization: Bearer <token>'. API docs are served at /docs.",
	}, nil
}
