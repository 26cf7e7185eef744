package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"hargakripto/internal/application"
)

var _ application.RunGuard = (*RunLock)(nil)

// RunLock reserves a key with SETNX so that overlapping tracker runs back off.
// The TTL bounds how long a crashed run can hold the lock.
type RunLock struct {
	Client *redis.Client
	Prefix string
	TTL    time.Duration
}

func NewRunLock(client *redis.Client, prefix string, ttl time.Duration) *RunLock {
	return &RunLock{Client: client, Prefix: prefix, TTL: ttl}
}

func (l *RunLock) TryReserve(ctx context.Context, key string) (bool, error) {
	ok, err := l.Client.SetNX(ctx, l.Prefix+key, "1", l.TTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (l *RunLock) Release(ctx context.Context, key string) error {
	return l.Client.Del(ctx, l.Prefix+key).Err()
}
