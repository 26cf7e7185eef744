package memstore

import (
	"context"
	"fmt"
	"sync"

	"hargakripto/internal/application"
)

var _ application.Storage = (*Store)(nil)

// Store is an in-memory Storage that also counts mutations.
type Store struct {
	mu     sync.Mutex
	files  map[string][]byte
	writes int
}

func New() *Store { return &Store{files: map[string][]byte{}} }

func (s *Store) Read(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, application.ErrNotFound)
	}
	return append([]byte(nil), b...), nil
}

func (s *Store) Write(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), data...)
	s.writes++
	return nil
}

func (s *Store) Append(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append(s.files[name], data...)
	s.writes++
	return nil
}

// Put seeds a file without counting it as a write.
func (s *Store) Put(name, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = []byte(content)
}

func (s *Store) Get(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	return string(b), ok
}

// Writes returns the number of Write and Append calls so far.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
