// Package common contains shared constants and sentinel errors used across
// tokengate components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on protected requests.
	AuthorizationHeaderName = "Authorization"

	// StatusReasonHeaderName echoes the authentication failure on 401 responses.
	StatusReasonHeaderName = "X-Status-Reason"

	// ResponseTimeHeaderName reports handling time, e.g. "3ms".
	ResponseTimeHeaderName = "X-Response-Time"

	// RequestIDHeaderName carries the per-request id.
	RequestIDHeaderName = "X-Request-Id"
)

// EnvTest disables request logging.
const EnvTest = "test"
