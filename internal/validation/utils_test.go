package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/activity-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ID    string `param:"id"`
	Name  string `json:"name" validate:"required"`
	Kind  string `json:"kind" validate:"required,oneof=a b"`
	Label string `json:"label" validate:"omitempty,min=3"`
}

func (r *sampleRequest) Validate() error {
	return Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "date", Message: "must be in the future"}}
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/samples/42", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("42")
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	req := &sampleRequest{}
	err := BindAndValidate(newContext(`{"name":"x","kind":"a"}`), req)

	require.NoError(t, err)
	assert.Equal(t, "42", req.ID)
	assert.Equal(t, "x", req.Name)
}

func TestBindAndValidate_MissingFields(t *testing.T) {
	err := BindAndValidate(newContext(`{"label":"ab"}`), &sampleRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "kind", Error: "is required"},
		{Field: "label", Error: "must be at least 3 characters"},
	}, httpErr.Errors)
}

func TestBindAndValidate_OneOf(t *testing.T) {
	err := BindAndValidate(newContext(`{"name":"x","kind":"z"}`), &sampleRequest{})

	httpErr := asHTTPError(t, err)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "kind", httpErr.Errors[0].Field)
	assert.Equal(t, "must be one of: a, b", httpErr.Errors[0].Error)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	err := BindAndValidate(newContext(`{"name":`), &sampleRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &customRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, []errs.FieldError{{Field: "date", Error: "must be in the future"}}, httpErr.Errors)
}
