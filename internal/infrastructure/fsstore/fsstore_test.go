package fsstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hargakripto/internal/application"
	"hargakripto/internal/infrastructure/fsstore"

	"github.com/stretchr/testify/require"
)

func TestStore_ReadMissing(t *testing.T) {
	s := fsstore.New(t.TempDir())
	_, err := s.Read(context.Background(), "data/harga.json")
	require.ErrorIs(t, err, application.ErrNotFound)
}

func TestStore_WriteCreatesDirs(t *testing.T) {
	root := t.TempDir()
	s := fsstore.New(root)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "data/harga.json", []byte("{}")))
	b, err := os.ReadFile(filepath.Join(root, "data", "harga.json"))
	require.NoError(t, err)
	require.Equal(t, "{}", string(b))

	require.NoError(t, s.Write(ctx, "data/harga.json", []byte(`{"a":1}`)))
	got, err := s.Read(ctx, "data/harga.json")
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(got))
}

func TestStore_Append(t *testing.T) {
	s := fsstore.New(t.TempDir())
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, "data/riwayat.csv", []byte("a\n")))
	require.NoError(t, s.Append(ctx, "data/riwayat.csv", []byte("b\n")))
	got, err := s.Read(ctx, "data/riwayat.csv")
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", string(got))
}
