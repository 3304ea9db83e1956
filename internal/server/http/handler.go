package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/server/users"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Email    string `json:"email" form:"email"`
	Name     string `json:"name" form:"name"`
}

// presentFields names the non-empty fields, never their values.
func (r registerRequest) presentFields() string {
	var got []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"username", r.Username},
		{"password", r.Password},
		{"email", r.Email},
		{"name", r.Name},
	} {
		if f.value != "" {
			got = append(got, f.name)
		}
	}
	if len(got) == 0 {
		return "nothing"
	}
	return strings.Join(got, ", ")
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// bind fills req from a JSON or form body. Bodies of any other content type
// leave req empty, so the handlers answer with their usual field errors.
func bind(c echo.Context, req any) error {
	err := c.Bind(req)
	if errors.Is(err, echo.ErrUnsupportedMediaType) {
		return nil
	}
	return err
}

func (s *HTTPServer) hello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello")
}

func (s *HTTPServer) register(c echo.Context) error {
	ctx := c.Request().Context()

	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if req.Username == "" || req.Password == "" || req.Email == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: common.ErrorMissingFields.Error() + " but got: " + req.presentFields(),
		})
	}

	_, err := s.users.Register(ctx, users.User{
		UserName: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Name:     req.Name,
	})
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.JSON(http.StatusNotAcceptable, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrorPasswordTooLong):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case err != nil:
		return err
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return c.JSON(http.StatusOK, messageResponse{Message: "success"})
}

func (s *HTTPServer) login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := s.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorBadUsername) || errors.Is(err, common.ErrorBadPassword) {
			return newAuthError(err)
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (s *HTTPServer) helloUser(c echo.Context) error {
	identity, ok := IdentityFromContext(c.Request().Context())
	if !ok {
		return newAuthError(common.ErrInvalidToken)
	}
	return c.String(http.StatusOK, "Hello "+identity.Name)
}
