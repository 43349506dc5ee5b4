// Package keyed holds items by a caller-assigned integer key and reports
// duplicate, missing and invalid keys as distinct errors.
package keyed

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

// Entity is anything identified by a non-negative integer key.
type Entity interface {
	Key() int
}

type Repository[T Entity] struct {
	mu    sync.RWMutex
	items map[int]T
}

func New[T Entity]() *Repository[T] {
	return &Repository[T]{items: make(map[int]T)}
}

func (r *Repository[T]) Add(item T) error {
	const op = "keyed.Add"

	id := item.Key()
	if id < 0 {
		return fmt.Errorf("%s: %w: id %d is negative", op, model.ErrInvalidArgument, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; ok {
		return fmt.Errorf("%s: %w: item with id %d already exists", op, model.ErrDuplicateKey, id)
	}
	r.items[id] = item

	return nil
}

func (r *Repository[T]) ByID(id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, notFound("keyed.ByID", id)
	}

	return item, nil
}

func (r *Repository[T]) Remove(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return notFound("keyed.Remove", id)
	}
	delete(r.items, id)

	return nil
}

// Update stores fn(current) under id. fn must not change the key.
func (r *Repository[T]) Update(id int, fn func(T) T) error {
	const op = "keyed.Update"

	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.items[id]
	if !ok {
		return notFound(op, id)
	}

	next := fn(cur)
	if next.Key() != id {
		return fmt.Errorf("%s: %w: key changed from %d to %d", op, model.ErrInvalidArgument, id, next.Key())
	}
	r.items[id] = next

	return nil
}

// All returns a copy of the stored items ordered by key.
func (r *Repository[T]) All() []T {
	r.mu.RLock()
	out := lo.Values(r.items)
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(a.Key(), b.Key()) })
	return out
}

// Replace swaps the whole content. On error the previous content is kept.
func (r *Repository[T]) Replace(items []T) error {
	const op = "keyed.Replace"

	next := make(map[int]T, len(items))
	for _, item := range items {
		id := item.Key()
		if id < 0 {
			return fmt.Errorf("%s: %w: id %d is negative", op, model.ErrInvalidArgument, id)
		}
		if _, ok := next[id]; ok {
			return fmt.Errorf("%s: %w: item with id %d already exists", op, model.ErrDuplicateKey, id)
		}
		next[id] = item
	}

	r.mu.Lock()
	r.items = next
	r.mu.Unlock()

	return nil
}

func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func notFound(op string, id int) error {
	return fmt.Errorf("%s: %w: item with id %d not found", op, model.ErrNotFound, id)
}
