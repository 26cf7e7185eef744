package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hargakripto/internal/domain"
)

const snapshotName = "data/harga.json"

func TestSnapshotStore_LoadMissing(t *testing.T) {
	t.Parallel()
	s := NewSnapshotStore(newMemStorage(), snapshotName)
	snap, err := s.Load(context.Background())
	require.Error(t, err)
	require.Equal(t, KindMissingFile, KindOf(err))
	require.True(t, snap.IsZero())
}

func TestSnapshotStore_LoadEmptyOrCorrupt(t *testing.T) {
	t.Parallel()
	for _, content := range []string{"", "   \n", "{not json", `["array"]`} {
		st := newMemStorage()
		st.files[snapshotName] = []byte(content)
		snap, err := NewSnapshotStore(st, snapshotName).Load(context.Background())
		require.Equal(t, KindCorruptSnapshot, KindOf(err), "content %q", content)
		require.True(t, snap.IsZero())
	}
}

func TestSnapshotStore_LoadUnreadable(t *testing.T) {
	t.Parallel()
	st := newMemStorage()
	st.readErr = errors.New("permission denied")
	_, err := NewSnapshotStore(st, snapshotName).Load(context.Background())
	require.Equal(t, KindCorruptSnapshot, KindOf(err))
}

func TestSnapshotStore_SaveRoundTrip(t *testing.T) {
	t.Parallel()
	st := newMemStorage()
	s := NewSnapshotStore(st, snapshotName)
	rate := 16250.5
	in := domain.NewSnapshot(time.Date(2025, 5, 1, 7, 30, 0, 0, time.UTC), domain.Prices{
		"bitcoin": 650000000, "ethereum": 35000000, "solana": 2000000, "usdt": 15500,
	}, &rate)

	require.NoError(t, s.Save(context.Background(), in))
	require.Equal(t, `{
  "waktu": "2025-05-01T07:30:00.000Z",
  "harga": {
    "bitcoin": 650000000,
    "ethereum": 35000000,
    "solana": 2000000,
    "usdt": 15500
  },
  "kurs": 16250.5
}`, string(st.files[snapshotName]))

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, in, out)
	require.True(t, in.Equal(out))
}

func TestSnapshotStore_SaveFailure(t *testing.T) {
	t.Parallel()
	st := newMemStorage()
	st.writeErr = ErrBackend
	err := NewSnapshotStore(st, snapshotName).Save(context.Background(), domain.Snapshot{})
	require.Equal(t, KindStorage, KindOf(err))
	require.ErrorIs(t, err, ErrBackend)
}
