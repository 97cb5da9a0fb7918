package storeerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/activity-api/internal/errs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// generateErrorCode creates consistent application error codes:
//
//	<ENTITY>_<ACTION>
//
// e.g. activity + NotFound => ACTIVITY_NOT_FOUND
func generateErrorCode(entity string, code Code) string {
	if entity == "" {
		entity = "record"
	}

	domain := strings.ToUpper(entity)

	action := "ERROR"
	switch code {
	case NotFound:
		action = "NOT_FOUND"
	case AlreadyExists:
		action = "ALREADY_EXISTS"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the end-user-facing message for err.
func formatUserFriendlyMessage(storeErr *Error) string {
	if storeErr.Message != "" {
		return storeErr.Message
	}

	entityName := humanizeText(storeErr.Entity)
	if entityName == "" {
		entityName = "Record"
	}

	switch storeErr.Code {
	case NotFound:
		return fmt.Sprintf("%s not found", entityName)
	case AlreadyExists:
		return fmt.Sprintf("%s already exists", entityName)
	default:
		return "An error occurred while processing your request"
	}
}

// humanizeText converts snake_case into Title Case.
//
//	"activity_participant" -> "Activity Participant"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a store error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - NotFound: 404 with <ENTITY>_NOT_FOUND
//   - AlreadyExists: 400 with <ENTITY>_ALREADY_EXISTS
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var storeErr *Error
	if !errors.As(err, &storeErr) {
		return errs.NewInternalServerError()
	}

	errorCode := generateErrorCode(storeErr.Entity, storeErr.Code)
	userMessage := formatUserFriendlyMessage(storeErr)

	switch storeErr.Code {
	case NotFound:
		return errs.NewNotFoundError(userMessage, true, &errorCode)
	case AlreadyExists:
		return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)
	default:
		return errs.NewInternalServerError()
	}
}
