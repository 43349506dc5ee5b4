package stock

import (
	"fmt"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/repository/keyed"
)

// Item is a keyed value whose quantity can be replaced.
type Item[T any] interface {
	keyed.Entity
	Stock() int
	WithQuantity(q int) T
}

type Repository[T Item[T]] struct {
	*keyed.Repository[T]
}

func New[T Item[T]]() *Repository[T] {
	return &Repository[T]{Repository: keyed.New[T]()}
}

// UpdateQuantity validates the quantity before looking the id up, so a
// negative value is always reported as an invalid argument.
func (r *Repository[T]) UpdateQuantity(id, newQuantity int) error {
	const op = "stock.UpdateQuantity"

	if newQuantity < 0 {
		return fmt.Errorf("%s: %w: quantity cannot be negative (got %d)", op, model.ErrInvalidArgument, newQuantity)
	}

	if err := r.Update(id, func(item T) T { return item.WithQuantity(newQuantity) }); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IncreaseStock adds delta to the current quantity and returns the stored
// item. The read and the write happen under one lock.
func (r *Repository[T]) IncreaseStock(id, delta int) (T, error) {
	const op = "stock.IncreaseStock"

	var (
		zero    T
		updated T
		invalid error
	)

	err := r.Update(id, func(item T) T {
		q := item.Stock() + delta
		if q < 0 {
			invalid = fmt.Errorf("%w: quantity cannot be negative (got %d)", model.ErrInvalidArgument, q)
			return item
		}
		updated = item.WithQuantity(q)
		return updated
	})
	if err == nil {
		err = invalid
	}
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}
