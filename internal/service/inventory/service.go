package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/repository/stock"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/logger"
)

type SnapshotStore interface {
	Save(ctx context.Context, items []model.InventoryItem) error
	Load(ctx context.Context) ([]model.InventoryItem, error)
}

type service struct {
	repo    *stock.Repository[model.InventoryItem]
	store   SnapshotStore
	timeout time.Duration
	out     *console.Printer
	now     func() time.Time
}

func NewInventoryService(store SnapshotStore, timeout time.Duration, out *console.Printer) *service {
	return &service{
		repo:    stock.New[model.InventoryItem](),
		store:   store,
		timeout: timeout,
		out:     out,
		now:     time.Now,
	}
}

func (s *service) Add(item model.InventoryItem) error {
	if err := s.repo.Add(item); err != nil {
		return fmt.Errorf("inventory.Add: %w", err)
	}
	return nil
}

func (s *service) Items() []model.InventoryItem { return s.repo.All() }

func (s *service) UpdateQuantity(id, quantity int) error {
	if err := s.repo.UpdateQuantity(id, quantity); err != nil {
		return fmt.Errorf("inventory.UpdateQuantity: %w", err)
	}
	return nil
}

func (s *service) Seed(_ context.Context) error {
	now := s.now().UTC().Truncate(time.Second)

	items := []model.InventoryItem{
		{ID: 1, Name: "USB-C Cable", Quantity: 40, DateAdded: now},
		{ID: 2, Name: "HDMI Adapter", Quantity: 25, DateAdded: now},
		{ID: 3, Name: "Notebook A5", Quantity: 100, DateAdded: now},
		{ID: 4, Name: "Pen Blue", Quantity: 250, DateAdded: now},
		{ID: 5, Name: "Stapler", Quantity: 15, DateAdded: now},
	}
	for _, item := range items {
		if err := s.Add(item); err != nil {
			return fmt.Errorf("inventory.Seed: %w", err)
		}
	}
	return nil
}

// Save writes the full log through the store.
func (s *service) Save(ctx context.Context) error {
	const op = "inventory.Save"

	items := s.repo.All()
	log := logger.With(logger.Int("items", len(items)))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Save(ctx, items); err != nil {
		log.Error(ctx, "snapshot save", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "snapshot saved")
	return nil
}

// Load replaces the log with the stored snapshot and returns its size.
// On any failure the in-memory log is left as it was.
func (s *service) Load(ctx context.Context) (int, error) {
	const op = "inventory.Load"

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.store.Load(ctx)
	if err != nil {
		logger.Error(ctx, "snapshot load", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Replace(items); err != nil {
		logger.Error(ctx, "snapshot contents rejected", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	if len(items) == 0 {
		logger.Info(ctx, "no saved snapshot, starting with an empty log")
		s.out.Line("No saved inventory found. Starting with empty log.")
		return 0, nil
	}

	logger.Info(ctx, "snapshot loaded", logger.Int("items", len(items)))
	return len(items), nil
}

// Run mirrors two sessions: the first seeds and saves, the second loads and prints.
func Run(ctx context.Context, first, second *service) error {
	if err := first.Seed(ctx); err != nil {
		return err
	}
	if err := first.Save(ctx); err != nil {
		first.out.Caught(err)
		return err
	}
	first.out.Line("Saved %d items.", len(first.Items()))

	n, err := second.Load(ctx)
	if err != nil {
		second.out.Caught(err)
		return err
	}
	second.out.Line("Loaded %d items.", n)

	second.out.Heading("Inventory")
	console.List(second.out, second.Items(), "Inventory is empty.")
	return nil
}
