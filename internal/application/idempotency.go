package application

import "context"

// RunGuard keeps two tracker passes from overlapping.
type RunGuard interface {
	// TryReserve returns true if key was absent and is now reserved.
	// Returns false if the key already exists (another run holds it).
	TryReserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// NoopGuard always succeeds; used when no lock backend is configured.
type NoopGuard struct{}

func (NoopGuard) TryReserve(context.Context, string) (bool, error) { return true, nil }
func (NoopGuard) Release(context.Context, string) error            { return nil }
