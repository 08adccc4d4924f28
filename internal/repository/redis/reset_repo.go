package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ResetCodeTTL    = 5 * time.Minute
	resetCodePrefix = "reset:code"
)

var ErrCodeNotFound = errors.New("reset code not found")

// ResetCodeRepository stores one-shot password reset codes keyed by email.
type ResetCodeRepository struct{}

func (r *ResetCodeRepository) key(email string) string {
	return fmt.Sprintf("%s:%s", resetCodePrefix, email)
}

func (r *ResetCodeRepository) Save(ctx context.Context, email, code string) error {
	if err := Client.Set(ctx, r.key(email), code, ResetCodeTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

// Take consumes the code: a single GETDEL so a code verifies at most once,
// even under concurrent reset attempts.
func (r *ResetCodeRepository) Take(ctx context.Context, email string) (string, error) {
	code, err := Client.GetDel(ctx, r.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return code, nil
}

func (r *ResetCodeRepository) Delete(ctx context.Context, email string) error {
	if err := Client.Del(ctx, r.key(email)).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}
