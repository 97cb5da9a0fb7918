package repository

import (
	"context"
	"strconv"
	"sync"

	"github.com/deppfellow/activity-api/internal/model/activity"
	"github.com/deppfellow/activity-api/internal/storeerr"
	"github.com/rs/zerolog"
)

// ActivityRepository stores activities in insertion order.
//
// Every method returns copies, so callers never hold references into the
// collection.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities []*activity.Activity
	nextID     int
	logger     *zerolog.Logger
}

// NewActivityRepository creates an empty activity collection.
func NewActivityRepository(logger *zerolog.Logger) *ActivityRepository {
	return &ActivityRepository{
		nextID: 1,
		logger: logger,
	}
}

func notFound(id int) error {
	return storeerr.NewNotFound("activity", strconv.Itoa(id))
}

// find returns the stored activity with id. Callers must hold mu.
func (r *ActivityRepository) find(id int) (*activity.Activity, bool) {
	for _, a := range r.activities {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Create stores a new activity with no participants.
func (r *ActivityRepository) Create(ctx context.Context, fields activity.Fields) (activity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return activity.Activity{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a := &activity.Activity{
		ID:           r.nextID,
		Title:        fields.Title,
		Description:  fields.Description,
		Date:         fields.Date,
		Participants: []activity.Participant{},
	}
	r.nextID++
	r.activities = append(r.activities, a)

	r.logger.Debug().Int("activity_id", a.ID).Msg("activity stored")

	return a.Clone(), nil
}

// List returns every activity in creation order.
func (r *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activity.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		out = append(out, a.Clone())
	}
	return out, nil
}

// GetByID returns the activity with id.
func (r *ActivityRepository) GetByID(ctx context.Context, id int) (activity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return activity.Activity{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.find(id)
	if !ok {
		return activity.Activity{}, notFound(id)
	}
	return a.Clone(), nil
}

// Update overwrites title, description and date. Participants are kept.
func (r *ActivityRepository) Update(ctx context.Context, id int, fields activity.Fields) (activity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return activity.Activity{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.find(id)
	if !ok {
		return activity.Activity{}, notFound(id)
	}

	a.Title = fields.Title
	a.Description = fields.Description
	a.Date = fields.Date

	return a.Clone(), nil
}

// AddParticipant appends p to the activity unless p.UserID already joined.
func (r *ActivityRepository) AddParticipant(ctx context.Context, id int, p activity.Participant) (activity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return activity.Activity{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.find(id)
	if !ok {
		return activity.Activity{}, notFound(id)
	}

	if a.HasParticipant(p.UserID) {
		return activity.Activity{}, storeerr.NewAlreadyExists(
			"participant",
			strconv.Itoa(p.UserID),
			"You have already joined this activity",
		)
	}

	a.Participants = append(a.Participants, p)

	r.logger.Debug().
		Int("activity_id", a.ID).
		Int("user_id", p.UserID).
		Int("participants", len(a.Participants)).
		Msg("participant added")

	return a.Clone(), nil
}

// Count returns the number of stored activities.
func (r *ActivityRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}
