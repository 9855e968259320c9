// Package jsonstore holds the small flat key-value side-stores the engine
// reads next to the relational store: reference names, due dates and order
// values, each a single JSON object keyed by job number.
//
// Put is a whole-file read-modify-write. Two concurrent writers to the
// same store race and the last writer wins; there is no merge. Callers
// that care must serialize their writes. This mirrors the upstream
// behavior on purpose - adding locking here would change what operators
// observe on shared deployments.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	ReferenceNamesFile = "reference_names.json"
	DueDatesFile       = "due_dates.json"
	OrderValuesFile    = "order_values.json"
)

// Store is one JSON map file keyed by job number.
type Store[T any] struct {
	path string
	log  *slog.Logger
}

func New[T any](dir, file string, log *slog.Logger) *Store[T] {
	return &Store[T]{path: filepath.Join(dir, file), log: log}
}

// All reads the whole map. A missing or corrupt file reads as an empty
// map with a logged warning, never an error.
func (s *Store[T]) All() map[string]T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("side-store unreadable, treating as empty",
				slog.String("path", s.path), slog.String("error", err.Error()))
		}
		return map[string]T{}
	}

	values := map[string]T{}
	if err := json.Unmarshal(data, &values); err != nil {
		s.log.Warn("side-store corrupt, treating as empty",
			slog.String("path", s.path), slog.String("error", err.Error()))
		return map[string]T{}
	}

	return values
}

// Get looks up one job's value.
func (s *Store[T]) Get(jobNumber string) (T, bool) {
	v, ok := s.All()[jobNumber]
	return v, ok
}

// Put writes one job's value back through a whole-file rewrite.
// Last-writer-wins under concurrency; see the package comment.
func (s *Store[T]) Put(jobNumber string, value T) error {
	const op = "jsonstore.Put"

	values := s.All()
	values[jobNumber] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: marshal %s: %w", op, s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("%s: write %s: %w", op, s.path, err)
	}

	return nil
}
