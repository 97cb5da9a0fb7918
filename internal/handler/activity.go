package handler

import (
	"github.com/deppfellow/activity-api/internal/errs"
	"github.com/deppfellow/activity-api/internal/middleware"
	"github.com/deppfellow/activity-api/internal/model/activity"
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/deppfellow/activity-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ActivityHandler struct {
	Handler
	activityService *service.ActivityService
}

func NewActivityHandler(s *server.Server, activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		Handler:         NewHandler(s),
		activityService: activityService,
	}
}

// ListActivities returns every activity, participants included.
func (h *ActivityHandler) ListActivities(c echo.Context, _ *activity.ListActivitiesRequest) ([]activity.Activity, error) {
	return h.activityService.List(c.Request().Context())
}

func (h *ActivityHandler) CreateActivity(c echo.Context, req *activity.CreateActivityRequest) (*activity.ActivityResponse, error) {
	created, err := h.activityService.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	return &activity.ActivityResponse{
		Message:  "Activity created",
		Activity: created,
	}, nil
}

func (h *ActivityHandler) UpdateActivity(c echo.Context, req *activity.UpdateActivityRequest) (*activity.ActivityResponse, error) {
	updated, err := h.activityService.Update(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	return &activity.ActivityResponse{
		Message:  "Activity updated",
		Activity: updated,
	}, nil
}

func (h *ActivityHandler) JoinActivity(c echo.Context, req *activity.JoinActivityRequest) (*activity.JoinActivityResponse, error) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}

	joined, err := h.activityService.Join(c.Request().Context(), req, claims)
	if err != nil {
		return nil, err
	}

	return &activity.JoinActivityResponse{
		Message:       "Successfully joined the activity",
		ActivityTitle: joined.Title,
	}, nil
}
