package users

import "github.com/dmitrijs2005/tokengate/internal/server/auth"

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext, and is not serialised.
type User struct {
	UserName string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Identity strips the password.
func (u *User) Identity() auth.Identity {
	return auth.Identity{Username: u.UserName, Email: u.Email, Name: u.Name}
}
