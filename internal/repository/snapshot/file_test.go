package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

func fakeItems(n int) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, n)
	for i := range n {
		out = append(out, model.InventoryItem{
			ID:        i + 1,
			Name:      gofakeit.ProductName(),
			Quantity:  gofakeit.IntRange(0, 500),
			DateAdded: gofakeit.Date().UTC().Truncate(time.Second),
		})
	}
	return out
}

func TestFileStoreLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content *string
		wantLen int
		wantErr error
	}{
		{name: "missing file starts empty", content: nil, wantLen: 0},
		{name: "empty file starts empty", content: ptr("  \n"), wantLen: 0},
		{name: "null document", content: ptr("null"), wantLen: 0},
		{name: "valid document", content: ptr(`[{"id":1,"name":"Stapler","quantity":15,"date_added":"2026-10-19T09:00:00Z"}]`), wantLen: 1},
		{name: "corrupt document", content: ptr(`[{"id":1,`), wantErr: model.ErrPersistence},
		{name: "wrong shape", content: ptr(`{"id":1}`), wantErr: model.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "inventory.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			items, err := NewFileStore[model.InventoryItem](path).Load(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, items)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, items)
			assert.Len(t, items, tt.wantLen)
		})
	}
}

func TestFileStoreSaveWritesIndentedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "inventory.json")
	store := NewFileStore[model.InventoryItem](path)

	item := model.InventoryItem{ID: 5, Name: "Stapler", Quantity: 15, DateAdded: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, store.Save(context.Background(), []model.InventoryItem{item}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {\n    \"id\": 5,")
	assert.Contains(t, string(raw), `"date_added": "2026-10-19T09:00:00Z"`)

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, store.Save(context.Background(), nil))
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFileStoreSaveFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// The target path is a directory, so the rename cannot succeed.
	store := NewFileStore[model.InventoryItem](dir)

	err := store.Save(context.Background(), fakeItems(1))
	require.ErrorIs(t, err, model.ErrPersistence)
}

func TestFileStoreCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewFileStore[model.InventoryItem](filepath.Join(t.TempDir(), "x.json"))
	require.ErrorIs(t, store.Save(ctx, nil), model.ErrPersistence)

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, model.ErrPersistence)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		items := make([]model.InventoryItem, 0, n)
		for i := range n {
			items = append(items, model.InventoryItem{
				ID:        i,
				Name:      rapid.String().Draw(rt, "name"),
				Quantity:  rapid.IntRange(0, 1_000_000).Draw(rt, "qty"),
				DateAdded: time.Unix(rapid.Int64Range(0, 4_000_000_000).Draw(rt, "ts"), 0).UTC(),
			})
		}

		store := NewFileStore[model.InventoryItem](filepath.Join(dir, "round.json"))
		if err := store.Save(context.Background(), items); err != nil {
			rt.Fatalf("save: %v", err)
		}
		got, err := store.Load(context.Background())
		if err != nil {
			rt.Fatalf("load: %v", err)
		}
		if len(got) != len(items) {
			rt.Fatalf("len %d, want %d", len(got), len(items))
		}
		for i := range items {
			if !got[i].DateAdded.Equal(items[i].DateAdded) || got[i].ID != items[i].ID ||
				got[i].Name != items[i].Name || got[i].Quantity != items[i].Quantity {
				rt.Fatalf("item %d: got %+v, want %+v", i, got[i], items[i])
			}
		}
	})
}

func TestConverter(t *testing.T) {
	t.Parallel()

	added := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("GMT+1", 3600))
	item := model.InventoryItem{ID: 3, Name: "Notebook A5", Quantity: 100, DateAdded: added}

	ent := EntityFromModel(item)
	assert.Equal(t, time.UTC, ent.DateAdded.Location())

	back := EntityToModel(ent)
	assert.True(t, back.DateAdded.Equal(added))
	assert.Equal(t, item.ID, back.ID)
	assert.Equal(t, item.Name, back.Name)
	assert.Equal(t, item.Quantity, back.Quantity)
}

func TestConverterTruncatesToMilliseconds(t *testing.T) {
	t.Parallel()

	added := time.Date(2026, 10, 19, 9, 15, 30, 123_456_789, time.UTC)

	ent := EntityFromModel(model.InventoryItem{ID: 1, Name: "Stapler", Quantity: 3, DateAdded: added})
	assert.Equal(t, time.Date(2026, 10, 19, 9, 15, 30, 123_000_000, time.UTC), ent.DateAdded)
	assert.Equal(t, ent.DateAdded, EntityFromModel(EntityToModel(ent)).DateAdded)
}

func ptr(s string) *string { return &s }
