package users

import (
	"context"
)

// Repository stores users. Create does not check for duplicates; callers
// look the username up first.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	Count(ctx context.Context) (int, error)
}
