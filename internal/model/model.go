// Package model holds the domain records and the request/response
// payloads of the API, one sub-package per resource.
package model
