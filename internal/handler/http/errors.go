package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidDeviceID is returned when the {deviceID} URL parameter is
	// missing, not a number, or outside the valid device id range.
	ErrInvalidDeviceID = errors.New("invalid device id in URL")
)
