package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedSessionKeyPrefix = "session:revoked:"

func RevokedSessionKey(jti string) string {
	return revokedSessionKeyPrefix + jti
}

//go:generate mockgen -source=session_store.go -destination=mock/session_store_mock.go -package=mock

// SessionStore remembers logged-out sessions until their tokens would have expired anyway.
type SessionStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type redisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (s *redisSessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, RevokedSessionKey(jti), "1", ttl).Err()
}

func (s *redisSessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, RevokedSessionKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
