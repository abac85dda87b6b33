package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/repository"
	"github.com/osse101/WheelOfFortune_Go/internal/utils"
)

// file is the on-disk layout of the prefs file
type file struct {
	Version string         `json:"version"`
	Values  map[string]int `json:"values"`
}

const fileVersion = "1.0"

// Store persists progress keys to a JSON file, rewritten atomically on every change
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]int
	loaded bool
}

// NewStore creates a store backed by path. The file is read lazily.
func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ repository.ProgressStore = (*Store)(nil)

// load reads the file once; a missing file is an empty store
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	var f file
	err := utils.LoadJSON(s.path, &f)
	switch {
	case errors.Is(err, os.ErrNotExist):
		f.Values = nil
	case err != nil:
		return fmt.Errorf("%w: read %s: %v", domain.ErrPersistenceUnavailable, s.path, err)
	}

	s.values = f.Values
	if s.values == nil {
		s.values = make(map[string]int)
	}
	s.loaded = true
	return nil
}

func (s *Store) flush() error {
	if err := utils.SaveJSON(s.path, file{Version: fileVersion, Values: s.values}); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrPersistenceUnavailable, s.path, err)
	}
	return nil
}

func (s *Store) GetInt(_ context.Context, key string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return 0, false, err
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) SetInt(_ context.Context, key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

// Ping reports whether the file can be read
func (s *Store) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}
