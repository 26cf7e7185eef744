package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"hargakripto/internal/application"
)

var _ application.Storage = (*BlobStore)(nil)

// BlobStore keeps each named blob in a string key under Prefix.
type BlobStore struct {
	Client *redis.Client
	Prefix string
}

func NewBlobStore(client *redis.Client, prefix string) *BlobStore {
	return &BlobStore{Client: client, Prefix: prefix}
}

func (s *BlobStore) key(name string) string { return s.Prefix + name }

func (s *BlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	b, err := s.Client.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", name, application.ErrNotFound)
	}
	return b, err
}

func (s *BlobStore) Write(ctx context.Context, name string, data []byte) error {
	return s.Client.Set(ctx, s.key(name), data, 0).Err()
}

func (s *BlobStore) Append(ctx context.Context, name string, data []byte) error {
	return s.Client.Append(ctx, s.key(name), string(data)).Err()
}
