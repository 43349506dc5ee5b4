package snapshot

import (
	"time"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

func EntityToModel(e InventoryItemEntity) model.InventoryItem {
	return model.InventoryItem{
		ID:        e.ID,
		Name:      e.Name,
		Quantity:  e.Quantity,
		DateAdded: e.DateAdded,
	}
}

// EntityFromModel stores DateAdded in UTC at millisecond precision, the
// resolution of a BSON datetime.
func EntityFromModel(i model.InventoryItem) InventoryItemEntity {
	return InventoryItemEntity{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		DateAdded: i.DateAdded.UTC().Truncate(time.Millisecond),
	}
}
