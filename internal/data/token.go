package data

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cinetalk/internal/biz"
	"cinetalk/internal/conf"
	"cinetalk/internal/pkg/authn"

	"github.com/go-kratos/kratos/v2/log"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultTokenTTL = 72 * time.Hour

type tokenRepo struct {
	data   *Data
	secret []byte
	issuer string
	ttl    time.Duration
	log    *log.Helper
}

// NewTokenRepo creates a JWT issuer whose revocations live in redis
func NewTokenRepo(data *Data, c *conf.Auth, logger log.Logger) biz.TokenRepo {
	ttl := c.TokenTtl.AsDuration()
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &tokenRepo{
		data:   data,
		secret: []byte(c.JwtSecret),
		issuer: c.Issuer,
		ttl:    ttl,
		log:    log.NewHelper(logger),
	}
}

func (r *tokenRepo) Issue(ctx context.Context, user *biz.User) (string, error) {
	now := time.Now()
	claims := &authn.Claims{
		Username: user.Username,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    r.issuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(r.ttl)),
		},
	}
	signed, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (r *tokenRepo) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if r.data.rdb == nil {
		r.log.WithContext(ctx).Warnf("redis unavailable, token %s stays valid until it expires", tokenID)
		return nil
	}
	ttl := time.Until(expiresAt)
	if expiresAt.IsZero() {
		ttl = r.ttl
	}
	if ttl <= 0 {
		return nil
	}
	return r.data.rdb.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

func (r *tokenRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if r.data.rdb == nil {
		return false, nil
	}
	err := r.data.rdb.Get(ctx, revokedKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func revokedKey(tokenID string) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID)
}
