// Package http exposes the user service over HTTP: public registration and
// login, and bearer-token protected routes.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/logging"
	"github.com/dmitrijs2005/tokengate/internal/server/users"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address   string
	env       string
	users     *users.Service
	logger    logging.Logger
	jwtSecret []byte
	echo      *echo.Echo
}

func NewHTTPServer(a string, env string, l logging.Logger, us *users.Service, secretKey string) (*HTTPServer, error) {
	s := &HTTPServer{
		address:   a,
		env:       env,
		logger:    l.With("module", "http_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}

	s.echo = s.newEcho()

	return s, nil
}

// newEcho assembles the pipeline. Outermost first:
// request id, panic recovery, response time, request log,
// auth error translation, token check, then the route.
func (s *HTTPServer) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(s.requestID, middleware.Recover(), s.responseTime)
	if s.env != common.EnvTest {
		e.Use(s.logRequests)
	}
	e.Use(s.translateAuthErrors, s.requireToken)

	e.GET("/", s.hello)
	e.POST("/public/register", s.register)
	e.POST("/public/login", s.login)
	e.GET("/api/v1", s.helloUser)

	return e
}

// handleError logs errors that are not plain HTTP errors before handing
// them to Echo's default handler, which answers 500.
func (s *HTTPServer) handleError(err error, c echo.Context) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		s.logger.Error(c.Request().Context(), "unhandled error", "path", c.Request().URL.Path, "error", err.Error())
	}
	s.echo.DefaultHTTPErrorHandler(err, c)
}

// Handler returns the request pipeline, e.g. for httptest.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String(), "env", s.env)

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	return nil
}
