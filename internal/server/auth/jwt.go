// Package auth signs and verifies access tokens and hashes passwords.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the user as seen by token holders. It has no password field,
// so a password can never end up inside a token.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name"`
}

// Claims is the token payload: the identity under "data" plus exp and iat.
type Claims struct {
	Data Identity `json:"data"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for identity. exp is now+validity;
// a negative validity yields an already expired token.
func GenerateToken(identity Identity, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Data: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns its claims. Failures come back
// as one of the common token errors, whose messages are stable:
//
//	common.ErrTokenMissing      empty string
//	common.ErrTokenMalformed    not exactly three segments
//	common.ErrSignatureMissing  empty signature segment
//	common.ErrInvalidSignature  bad signature or unexpected algorithm
//	common.ErrTokenExpired      exp in the past
//	common.ErrTokenNotActive    nbf in the future
//	common.ErrInvalidToken      anything else
//
// The signature is checked before the time claims.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	if tokenString == "" {
		return nil, common.ErrTokenMissing
	}
	if strings.Count(tokenString, ".") != 2 {
		return nil, common.ErrTokenMalformed
	}

	claims := &Claims{}
	if strings.HasSuffix(tokenString, ".") {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrSignatureMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, tokenError(err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

func tokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return common.ErrTokenNotActive
	default:
		return common.ErrInvalidToken
	}
}
