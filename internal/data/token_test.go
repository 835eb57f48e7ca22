package data

import (
	"testing"
	"time"

	"cinetalk/internal/biz"
	"cinetalk/internal/conf"
	"cinetalk/internal/pkg/authn"

	"github.com/go-kratos/kratos/v2/log"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuth = &conf.Auth{JwtSecret: "test-secret", Issuer: "cinetalk", TokenTtl: conf.NewDuration(time.Hour)}

func TestTokenRepoIssue(t *testing.T) {
	repo := NewTokenRepo(NewDataWithClients(nil, nil, log.DefaultLogger), testAuth, log.DefaultLogger)

	signed, err := repo.Issue(t.Context(), &biz.User{ID: 7, Username: "alice"})
	require.NoError(t, err)

	claims := &authn.Claims{}
	_, err = jwtv5.ParseWithClaims(signed, claims, func(*jwtv5.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "cinetalk", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	id, ok := authn.IdentityFromClaims(claims)
	require.True(t, ok)
	assert.EqualValues(t, 7, id.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, 5*time.Second)
}

func TestTokenRepoRevokeWithoutRedis(t *testing.T) {
	repo := NewTokenRepo(NewDataWithClients(nil, nil, log.DefaultLogger), testAuth, log.DefaultLogger)

	require.NoError(t, repo.Revoke(t.Context(), "jti-1", time.Now().Add(time.Hour)))
	revoked, err := repo.IsRevoked(t.Context(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenRepoRevokeWithRedis(t *testing.T) {
	d, mr := newRedisData(t)
	repo := NewTokenRepo(d, testAuth, log.DefaultLogger)

	revoked, err := repo.IsRevoked(t.Context(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(t.Context(), "jti-1", time.Now().Add(time.Hour)))
	revoked, err = repo.IsRevoked(t.Context(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = repo.IsRevoked(t.Context(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	// Tokens past their expiry need no entry.
	require.NoError(t, repo.Revoke(t.Context(), "jti-2", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists(revokedKey("jti-2")))
}
