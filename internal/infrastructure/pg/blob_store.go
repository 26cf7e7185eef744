package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hargakripto/internal/application"
)

var _ application.Storage = (*BlobStore)(nil)

// BlobStore keeps each named blob as one row of the blobs table.
type BlobStore struct{ db *DB }

func NewBlobStore(db *DB) *BlobStore { return &BlobStore{db: db} }

func (s *BlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	var content string
	err := s.db.Pool.QueryRow(ctx, `SELECT content FROM blobs WHERE name=$1`, name).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, application.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

func (s *BlobStore) Write(ctx context.Context, name string, data []byte) error {
	_, err := s.db.Pool.Exec(ctx, `
        INSERT INTO blobs(name, content, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (name) DO UPDATE
          SET content=EXCLUDED.content, updated_at=EXCLUDED.updated_at`, name, string(data))
	return err
}

func (s *BlobStore) Append(ctx context.Context, name string, data []byte) error {
	_, err := s.db.Pool.Exec(ctx, `
        INSERT INTO blobs(name, content, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (name) DO UPDATE
          SET content=blobs.content || EXCLUDED.content, updated_at=EXCLUDED.updated_at`, name, string(data))
	return err
}
