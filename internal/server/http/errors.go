package http

import (
	"net/http"

	"github.com/dmitrijs2005/tokengate/internal/common"
)

// AuthError is an authentication failure travelling up the middleware
// chain. translateAuthErrors turns it into a response; nothing else does.
type AuthError struct {
	Status int
	Err    error
}

func newAuthError(err error) *AuthError {
	return &AuthError{Status: http.StatusUnauthorized, Err: err}
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return common.ErrInvalidToken.Error()
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
