package storeerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/activity-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_NotFound(t *testing.T) {
	err := HandleError(fmt.Errorf("update: %w", NewNotFound("activity", "7")))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "ACTIVITY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Activity not found", httpErr.Message)
}

func TestHandleError_AlreadyExistsUsesCustomMessage(t *testing.T) {
	err := HandleError(NewAlreadyExists("participant", "3", "already joined"))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PARTICIPANT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "already joined", httpErr.Message)
}

func TestHandleError_PassThroughAndFallback(t *testing.T) {
	forbidden := errs.NewForbiddenError("no", false)
	assert.Same(t, forbidden, HandleError(forbidden))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(errors.New("boom")), &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCodeAndIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotFound("user", "bob"))

	assert.Equal(t, NotFound, ErrCode(err))
	assert.Equal(t, Other, ErrCode(errors.New("x")))
	assert.True(t, errors.Is(err, &Error{Code: NotFound}))
	assert.True(t, errors.Is(err, &Error{Code: NotFound, Entity: "user"}))
	assert.False(t, errors.Is(err, &Error{Code: NotFound, Entity: "activity"}))
}

func TestHumanizeText(t *testing.T) {
	assert.Equal(t, "Activity Participant", humanizeText("activity_participant"))
	assert.Equal(t, "", humanizeText(""))
}
