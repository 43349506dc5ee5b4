package snapshot

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

// MongoStore mirrors the inventory log into a collection, one document per item.
// Save is not atomic: it clears the collection and inserts the new set.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{coll: collection}
}

func (s *MongoStore) Save(ctx context.Context, items []model.InventoryItem) error {
	const op = "snapshot.MongoStore.Save"

	if _, err := s.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}
	if len(items) == 0 {
		return nil
	}

	docs := lo.Map(items, func(i model.InventoryItem, _ int) any { return EntityFromModel(i) })

	if _, err := s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	return nil
}

func (s *MongoStore) Load(ctx context.Context) ([]model.InventoryItem, error) {
	const op = "snapshot.MongoStore.Load"

	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	var ents []InventoryItemEntity
	if err := cur.All(ctx, &ents); err != nil {
		return nil, fmt.Errorf("%s decode: %w: %w", op, model.ErrPersistence, err)
	}

	return lo.Map(ents, func(e InventoryItemEntity, _ int) model.InventoryItem { return EntityToModel(e) }), nil
}
