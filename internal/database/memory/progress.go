package memory

import (
	"context"
	"sync"

	"github.com/osse101/WheelOfFortune_Go/internal/repository"
)

// ProgressStore keeps progress keys in process memory
type ProgressStore struct {
	mu     sync.RWMutex
	values map[string]int
}

// NewProgressStore creates an empty in-memory store
func NewProgressStore() *ProgressStore {
	return &ProgressStore{values: make(map[string]int)}
}

var _ repository.ProgressStore = (*ProgressStore)(nil)

func (s *ProgressStore) GetInt(_ context.Context, key string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *ProgressStore) SetInt(_ context.Context, key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *ProgressStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *ProgressStore) Ping(context.Context) error {
	return nil
}
