package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tokengate/internal/common"
)

// InMemoryRepository keeps users in a slice for the life of the process.
// Lookups scan in insertion order, so the first match wins.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, *user)

	u := *user
	return &u, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].UserName == userName {
			u := r.users[i]
			return &u, nil
		}
	}

	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users), nil
}
