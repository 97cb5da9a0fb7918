package router

import (
	"net/http"

	"github.com/deppfellow/activity-api/internal/handler"
	"github.com/deppfellow/activity-api/internal/middleware"
	"github.com/deppfellow/activity-api/internal/model/activity"
	"github.com/deppfellow/activity-api/internal/model/user"
	"github.com/labstack/echo/v4"
)

// registerActivityRoutes registers the activity endpoints. Every route needs
// a token; writes are admin only and joining is student only.
func registerActivityRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	activities := r.Group("/activities", m.Auth.RequireAuth)

	activities.GET("", handler.Handle(
		h.Activity.Handler,
		h.Activity.ListActivities,
		http.StatusOK,
		&activity.ListActivitiesRequest{},
	))

	activities.POST("", handler.Handle(
		h.Activity.Handler,
		h.Activity.CreateActivity,
		http.StatusCreated,
		&activity.CreateActivityRequest{},
	), m.Auth.RequireRole(user.RoleAdmin))

	activities.PUT("/:id", handler.Handle(
		h.Activity.Handler,
		h.Activity.UpdateActivity,
		http.StatusOK,
		&activity.UpdateActivityRequest{},
	), m.Auth.RequireRole(user.RoleAdmin))

	activities.POST("/:id/join", handler.Handle(
		h.Activity.Handler,
		h.Activity.JoinActivity,
		http.StatusOK,
		&activity.JoinActivityRequest{},
	), m.Auth.RequireRole(user.RoleStudent))
}
