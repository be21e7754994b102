// Package redissvc wraps the shared Redis client and the login failure
// tracking built on it.
package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

func loginFailureKey(username string) string {
	return fmt.Sprintf("login:failures:%s", username)
}

// RegisterLoginFailure counts a failed login attempt against the username.
// The counter expires after the lockout window. Returns the strike count.
func (s *RedisService) RegisterLoginFailure(username string, window time.Duration) (int, error) {
	key := loginFailureKey(username)
	count, err := s.rdb.Incr(s.ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := s.rdb.Expire(s.ctx, key, window).Err(); err != nil {
			return int(count), err
		}
	}
	return int(count), nil
}

// IsLoginLocked reports whether the username has reached the strike limit
// within the current window.
func (s *RedisService) IsLoginLocked(username string, maxFailures int) (bool, error) {
	count, err := s.rdb.Get(s.ctx, loginFailureKey(username)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= maxFailures, nil
}

// ClearLoginFailures resets the strike counter after a successful login.
func (s *RedisService) ClearLoginFailures(username string) error {
	return s.rdb.Del(s.ctx, loginFailureKey(username)).Err()
}
