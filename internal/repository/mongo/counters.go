package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterCollectionName = "counters"

// counters hands out sequential integer ids, one sequence per collection.
// The client identifies users and exercises by number.
type counters struct {
	collection *mongo.Collection
}

func newCounters(db *mongo.Database) *counters {
	return &counters{collection: db.Collection(counterCollectionName)}
}

func (c *counters) next(ctx context.Context, name string) (int, error) {
	var doc struct {
		Seq int `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := c.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return doc.Seq, nil
}
