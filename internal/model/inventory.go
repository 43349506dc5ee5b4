package model

import (
	"fmt"
	"time"
)

// InventoryItem is a single entry of the persisted inventory log.
type InventoryItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	DateAdded time.Time `json:"date_added"`
}

func (i InventoryItem) Key() int   { return i.ID }
func (i InventoryItem) Stock() int { return i.Quantity }

func (i InventoryItem) WithQuantity(q int) InventoryItem {
	i.Quantity = q
	return i
}

func (i InventoryItem) String() string {
	return fmt.Sprintf("%d: %s | Qty=%d | Added=%s",
		i.ID, i.Name, i.Quantity, i.DateAdded.Format("2006-01-02 15:04"))
}
