package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
)

const sessionKeyPrefix = "session:user"

// SessionRepository keeps the single active access token per user. Login
// overwrites it, logout deletes it, the auth middleware checks and extends it.
type SessionRepository struct {
	TTL time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{TTL: ttl}
}

func (r *SessionRepository) key(userID uint64) string {
	return fmt.Sprintf("%s:%d", sessionKeyPrefix, userID)
}

func (r *SessionRepository) Save(ctx context.Context, userID uint64, token string) error {
	if err := Client.Set(ctx, r.key(userID), token, r.TTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, userID uint64) (string, error) {
	token, err := Client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) Extend(ctx context.Context, userID uint64) error {
	if err := Client.Expire(ctx, r.key(userID), r.TTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID uint64) error {
	if err := Client.Del(ctx, r.key(userID)).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}
