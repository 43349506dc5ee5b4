// Package snapshot saves and loads a whole collection at once. Stores never
// touch the in-memory repositories; callers hand them a slice and get one back.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

type FileStore[T any] struct {
	path string
}

func NewFileStore[T any](path string) *FileStore[T] {
	return &FileStore[T]{path: path}
}

func (s *FileStore[T]) Path() string { return s.path }

// Save writes an indented JSON array next to the target and renames it into place.
func (s *FileStore[T]) Save(ctx context.Context, items []T) error {
	const op = "snapshot.FileStore.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	data, err := encode(items)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	return nil
}

// Load returns an empty slice when the file does not exist or is empty.
func (s *FileStore[T]) Load(ctx context.Context) ([]T, error) {
	const op = "snapshot.FileStore.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	items, err := decode[T](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	return items, nil
}

func encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.MarshalIndent(items, "", "  ")
}

func decode[T any](data []byte) ([]T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}
