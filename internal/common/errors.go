package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrorAlreadyExists = errors.New("User exists")
	ErrorBadUsername   = errors.New("bad username")
	ErrorBadPassword   = errors.New("bad password")

	// Validation errors.
	ErrorMissingFields   = errors.New("expected an object with username, password, email, name")
	ErrorPasswordTooLong = errors.New("password exceeds 72 bytes")

	// Token errors. The messages are part of the HTTP contract.
	ErrTokenMissing     = errors.New("jwt must be provided")
	ErrTokenMalformed   = errors.New("jwt malformed")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrSignatureMissing = errors.New("jwt signature is required")
	ErrTokenExpired     = errors.New("jwt expired")
	ErrTokenNotActive   = errors.New("jwt not active")
	ErrInvalidToken     = errors.New("invalid token")

	// Authorization header errors.
	ErrAuthHeaderMissing   = errors.New("Authorization header is missing")
	ErrAuthHeaderMalformed = errors.New(`Bad Authorization header format. Format is "Authorization: Bearer <token>"`)
)
