package snapshot

import "time"

type InventoryItemEntity struct {
	ID        int       `bson:"_id"`
	Name      string    `bson:"name"`
	Quantity  int       `bson:"quantity"`
	DateAdded time.Time `bson:"date_added"`
}
