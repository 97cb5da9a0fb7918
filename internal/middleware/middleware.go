// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as authentication (bearer access tokens), role checks,
// request logging, CORS, tracing, and panic recovery
package middleware
