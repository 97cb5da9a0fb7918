package service

import (
	"context"
	"strconv"
	"time"

	"github.com/deppfellow/activity-api/internal/lib/token"
	"github.com/deppfellow/activity-api/internal/model/activity"
	"github.com/deppfellow/activity-api/internal/repository"
	"github.com/deppfellow/activity-api/internal/server"
	"github.com/deppfellow/activity-api/internal/storeerr"
)

// ActivityService manages activities and enrollment.
type ActivityService struct {
	server     *server.Server
	activities *repository.ActivityRepository
	now        func() time.Time
}

func NewActivityService(s *server.Server, activities *repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		server:     s,
		activities: activities,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// parseID converts a path id. Anything that is not an integer cannot name
// an activity, so it is reported as not found.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, storeerr.NewNotFound("activity", raw)
	}
	return id, nil
}

func (s *ActivityService) List(ctx context.Context) ([]activity.Activity, error) {
	return s.activities.List(ctx)
}

func (s *ActivityService) Create(ctx context.Context, req *activity.CreateActivityRequest) (activity.Activity, error) {
	created, err := s.activities.Create(ctx, req.Fields)
	if err != nil {
		return activity.Activity{}, err
	}

	s.server.Logger.Info().
		Int("activity_id", created.ID).
		Str("title", created.Title).
		Msg("activity created")

	return created, nil
}

// Update overwrites the editable fields of an activity. Participants are
// never changed by an update.
func (s *ActivityService) Update(ctx context.Context, req *activity.UpdateActivityRequest) (activity.Activity, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return activity.Activity{}, err
	}

	updated, err := s.activities.Update(ctx, id, req.Fields)
	if err != nil {
		return activity.Activity{}, err
	}

	s.server.Logger.Info().Int("activity_id", id).Msg("activity updated")

	return updated, nil
}

// Join enrolls the authenticated student in an activity.
func (s *ActivityService) Join(ctx context.Context, req *activity.JoinActivityRequest, claims *token.Claims) (activity.Activity, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return activity.Activity{}, err
	}

	joined, err := s.activities.AddParticipant(ctx, id, activity.Participant{
		UserID:   claims.UserID,
		Username: claims.Username,
		JoinedAt: s.now(),
	})
	if err != nil {
		return activity.Activity{}, err
	}

	s.server.Logger.Info().
		Int("activity_id", id).
		Int("user_id", claims.UserID).
		Msg("student joined activity")

	return joined, nil
}

// Count returns the number of stored activities.
func (s *ActivityService) Count() int {
	return s.activities.Count()
}
