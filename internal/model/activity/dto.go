package activity

import "github.com/deppfellow/activity-api/internal/validation"

// Fields are the admin-editable parts of an activity.
type Fields struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

// ListActivitiesRequest is the (empty) input of GET /activities.
type ListActivitiesRequest struct{}

func (r *ListActivitiesRequest) Validate() error {
	return nil
}

// CreateActivityRequest is the body of POST /activities.
type CreateActivityRequest struct {
	Fields
}

func (r *CreateActivityRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateActivityRequest is the path and body of PUT /activities/:id.
//
// ID stays a string: an id that is not a number resolves to "not found".
type UpdateActivityRequest struct {
	ID string `param:"id" json:"-"`
	Fields
}

func (r *UpdateActivityRequest) Validate() error {
	return validation.Struct(r)
}

// JoinActivityRequest is the path of POST /activities/:id/join.
type JoinActivityRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *JoinActivityRequest) Validate() error {
	return nil
}

// ActivityResponse wraps a created or updated activity.
type ActivityResponse struct {
	Message  string   `json:"message"`
	Activity Activity `json:"activity"`
}

// JoinActivityResponse is returned by POST /activities/:id/join.
type JoinActivityResponse struct {
	Message       string `json:"message"`
	ActivityTitle string `json:"activityTitle"`
}
