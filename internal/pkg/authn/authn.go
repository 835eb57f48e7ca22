// Package authn carries the authenticated caller through request contexts.
package authn

import (
	"context"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued at login.
type Claims struct {
	Username string `json:"username"`
	jwtv5.RegisteredClaims
}

// Identity is the verified caller of a request.
type Identity struct {
	UserID    uint
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

// IdentityFromClaims converts verified claims; ok is false when the subject is
// not a user id.
func IdentityFromClaims(c *Claims) (Identity, bool) {
	if c == nil {
		return Identity{}, false
	}
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return Identity{}, false
	}
	ident := Identity{
		UserID:   uint(id),
		Username: c.Username,
		TokenID:  c.ID,
	}
	if c.ExpiresAt != nil {
		ident.ExpiresAt = c.ExpiresAt.Time
	}
	return ident, true
}

type identityKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the caller stored by NewContext.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
