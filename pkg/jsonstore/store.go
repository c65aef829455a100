// Package jsonstore persists ordered records as a human-readable JSON array
// in a single file. Every mutation re-reads the full document, appends, and
// rewrites it through a temp file + rename. A per-store mutex enforces the
// single-writer discipline; the files are the sole source of truth.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupted indicates the backing file exists but is not a valid JSON
// array of records. The store never attempts repair.
var ErrCorrupted = errors.New("store file is corrupted")

// Store persists records of type T as a JSON array at a fixed path.
type Store[T any] struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the file at path. The file is created lazily
// on the first write.
func New[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the full document. A missing file yields an empty slice.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Append loads the full document, appends the given records in order, and
// rewrites the file. All records land in a single write, so a user/assistant
// turn pair is persisted together or not at all.
func (s *Store[T]) Append(ctx context.Context, records ...T) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return err
	}

	return s.write(append(existing, records...))
}

// Overwrite replaces the full document with the given records.
// Used by seeding; the running service only ever appends.
func (s *Store[T]) Overwrite(ctx context.Context, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(records)
}

func (s *Store[T]) load() ([]T, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if len(raw) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, s.path, err)
	}

	return records, nil
}

func (s *Store[T]) write(records []T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}
