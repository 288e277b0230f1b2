package db

import (
	"context"
	"fmt"

	"github.com/lankanwheels/dealership/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityCollection defines the interface for the append-only activity log.
// There is no update or delete operation: entries are immutable once written.
type ActivityCollection interface {
	InsertActivity(ctx context.Context, entry models.ActivityEntry) error
	FindActivities(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error)
}

// MongoActivityCollection implements ActivityCollection for MongoDB.
type MongoActivityCollection struct {
	Collection *mongo.Collection
}

// InsertActivity appends an activity entry to the collection.
func (c *MongoActivityCollection) InsertActivity(ctx context.Context, entry models.ActivityEntry) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.InsertOne(ctx, entry)
	return err
}

// FindActivities queries activity entries from the collection.
func (c *MongoActivityCollection) FindActivities(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoCursor{cursor: cursor}, nil
}
