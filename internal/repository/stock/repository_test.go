package stock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

func seededElectronics(t *testing.T) *Repository[model.ElectronicItem] {
	t.Helper()

	repo := New[model.ElectronicItem]()
	require.NoError(t, repo.Add(model.ElectronicItem{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Dell", WarrantyMonths: 24}))
	return repo
}

func TestUpdateQuantityScenario(t *testing.T) {
	t.Parallel()

	repo := seededElectronics(t)

	require.NoError(t, repo.UpdateQuantity(1, 10+5))
	got, err := repo.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)

	err = repo.UpdateQuantity(999, 5)
	require.ErrorIs(t, err, model.ErrNotFound)

	err = repo.UpdateQuantity(1, -5)
	require.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.ErrorContains(t, err, "quantity cannot be negative")

	got, err = repo.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
}

func TestUpdateQuantityLeavesOtherFields(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC)
	repo := New[model.GroceryItem]()
	require.NoError(t, repo.Add(model.GroceryItem{ID: 102, Name: "Milk 1L", Quantity: 80, ExpiryDate: expiry}))

	require.NoError(t, repo.UpdateQuantity(102, 0))

	got, err := repo.ByID(102)
	require.NoError(t, err)
	assert.Equal(t, model.GroceryItem{ID: 102, Name: "Milk 1L", Quantity: 0, ExpiryDate: expiry}, got)
}

func TestIncreaseStock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      int
		delta   int
		wantErr error
		wantQty int
	}{
		{name: "success", id: 1, delta: 5, wantQty: 15},
		{name: "not found", id: 999, delta: 5, wantErr: model.ErrNotFound, wantQty: 10},
		{name: "would go negative", id: 1, delta: -11, wantErr: model.ErrInvalidArgument, wantQty: 10},
		{name: "down to zero", id: 1, delta: -10, wantQty: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := seededElectronics(t)

			item, err := repo.IncreaseStock(tt.id, tt.delta)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, item)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantQty, item.Quantity)
			}

			stored, err := repo.ByID(1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, stored.Quantity)
		})
	}
}

func TestIncreaseStockConcurrent(t *testing.T) {
	t.Parallel()

	const workers = 64

	repo := seededElectronics(t)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncreaseStock(1, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := repo.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, 10+workers, stored.Quantity)
}

func TestNegativeQuantityCheckedFirst(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		repo := New[model.InventoryItem]()
		present := rapid.Bool().Draw(rt, "present")
		id := rapid.IntRange(0, 50).Draw(rt, "id")
		if present {
			if err := repo.Add(model.InventoryItem{ID: id, Quantity: 3}); err != nil {
				rt.Fatalf("add: %v", err)
			}
		}

		q := rapid.IntRange(-1000, -1).Draw(rt, "q")
		err := repo.UpdateQuantity(id, q)
		if model.KindOf(err) != model.KindInvalidArgument {
			rt.Fatalf("UpdateQuantity(%d, %d) = %v, want invalid argument", id, q, err)
		}
	})
}
