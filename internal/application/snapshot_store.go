package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"hargakripto/internal/domain"
)

type SnapshotStore struct {
	storage Storage
	name    string
}

func NewSnapshotStore(storage Storage, name string) *SnapshotStore {
	return &SnapshotStore{storage: storage, name: name}
}

// Load returns the persisted snapshot. A missing, empty or unparsable file
// yields a zero snapshot together with a recoverable *Error.
func (s *SnapshotStore) Load(ctx context.Context) (domain.Snapshot, error) {
	data, err := s.storage.Read(ctx, s.name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Snapshot{}, E(KindMissingFile, "snapshot: "+s.name, err)
		}
		return domain.Snapshot{}, E(KindCorruptSnapshot, "snapshot: read "+s.name, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return domain.Snapshot{}, E(KindCorruptSnapshot, "snapshot: "+s.name, errors.New("file is empty"))
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, E(KindCorruptSnapshot, "snapshot: parse "+s.name, err)
	}
	return snap, nil
}

func (s *SnapshotStore) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return E(KindInternal, "snapshot: encode", err)
	}
	if err := s.storage.Write(ctx, s.name, data); err != nil {
		return E(KindStorage, "snapshot: write "+s.name, err)
	}
	return nil
}
