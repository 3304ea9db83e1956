package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFromContext returns the identity stored by requireToken.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

func isPublicPath(path string) bool {
	return path == "/" || strings.HasPrefix(path, "/public")
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", common.ErrAuthHeaderMissing
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", common.ErrAuthHeaderMalformed
	}

	return parts[1], nil
}

func (s *HTTPServer) requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Response().Header().Set(common.RequestIDHeaderName, id)
		return next(c)
	}
}

// responseTime stamps X-Response-Time just before the headers go out, so
// it is present on every response including error ones.
func (s *HTTPServer) responseTime(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		res := c.Response()
		res.Before(func() {
			res.Header().Set(common.ResponseTimeHeaderName, fmt.Sprintf("%dms", time.Since(start).Milliseconds()))
		})
		return next(c)
	}
}

func (s *HTTPServer) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusOf(err)
		}

		req := c.Request()
		s.logger.Info(req.Context(), "request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"duration", time.Since(start),
			"request_id", c.Response().Header().Get(common.RequestIDHeaderName),
		)

		return err
	}
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// translateAuthErrors is the one place where authentication failures become
// responses: 401, {"error": msg} and an X-Status-Reason header. Other errors
// pass through to Echo's error handler.
func (s *HTTPServer) translateAuthErrors(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		var authErr *AuthError
		if !errors.As(err, &authErr) || authErr.Status != http.StatusUnauthorized {
			return err
		}

		c.Response().Header().Set(common.StatusReasonHeaderName, authErr.Error())
		return c.JSON(authErr.Status, errorResponse{Error: authErr.Error()})
	}
}

// requireToken lets public paths through and demands a valid bearer token
// everywhere else. The token's identity goes into the request context.
func (s *HTTPServer) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if isPublicPath(req.URL.Path) {
			return next(c)
		}

		token, err := bearerToken(req.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			return newAuthError(err)
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Debug(req.Context(), "token rejected", "path", req.URL.Path, "reason", err.Error())
			return newAuthError(err)
		}

		c.SetRequest(req.WithContext(context.WithValue(req.Context(), identityKey, claims.Data)))
		return next(c)
	}
}
