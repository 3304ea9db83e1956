// Package users implements registration and login on top of a user
// Repository, a bcrypt hasher and HS256 access tokens.
package users

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/config"
)

type Service struct {
	repo          Repository
	hasher        *auth.PasswordHasher
	jwtSecret     []byte
	tokenValidity time.Duration

	// registerMu makes the lookup and the insert in Register one step.
	registerMu sync.Mutex
}

func NewService(repo Repository, cfg *config.Config) (*Service, error) {
	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	return &Service{
		repo:          repo,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}, nil
}

// Register stores a new user. user.Password is the plaintext; it is replaced
// by its hash before anything is stored. A taken username yields
// common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, user User) (*User, error) {

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	_, err = s.repo.GetUserByLogin(ctx, user.UserName)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	created, err := s.repo.Create(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// Login checks the credentials and returns a signed access token.
// Unknown users yield common.ErrorBadUsername, wrong passwords
// common.ErrorBadPassword.
func (s *Service) Login(ctx context.Context, userName, password string) (string, error) {

	user, err := s.repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorBadUsername
		}
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return "", common.ErrorBadPassword
	}

	token, err := auth.GenerateToken(user.Identity(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return token, nil
}

// Count reports how many users are registered.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
