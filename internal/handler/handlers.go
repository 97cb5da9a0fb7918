// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/deppfellow/activity-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Home     *HomeHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Auth     *AuthHandler
	Activity *ActivityHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:     NewHomeHandler(s),
		Health:   NewHealthHandler(s, services),
		OpenAPI:  NewOpenAPIHandler(s),
		Auth:     NewAuthHandler(s, services.Auth),
		Activity: NewActivityHandler(s, services.Activity),
	}
}
