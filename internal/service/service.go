// Package service contains the business logic.
//
// It sits between the handler and repository layers: AuthService hashes
// passwords and issues tokens, ActivityService resolves path ids and
// stamps joins. Errors are returned either as *errs.HTTPError or as store
// errors that the global error handler maps to a status.
package service
