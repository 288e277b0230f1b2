package db

import (
	"context"
	"fmt"

	"github.com/lankanwheels/dealership/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RepairCollection defines the interface for repair record operations.
type RepairCollection interface {
	InsertRepair(ctx context.Context, repair models.RepairRecord) error
	FindRepairs(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error)
	FindRepairByID(ctx context.Context, id string) (*models.RepairRecord, error)
	UpdateRepairStatus(ctx context.Context, id string, status string) error
}

// MongoRepairCollection implements RepairCollection for MongoDB.
type MongoRepairCollection struct {
	Collection *mongo.Collection
}

// InsertRepair inserts a repair record into the collection.
func (c *MongoRepairCollection) InsertRepair(ctx context.Context, repair models.RepairRecord) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.InsertOne(ctx, repair)
	return err
}

// FindRepairs queries repair records from the collection.
func (c *MongoRepairCollection) FindRepairs(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoCursor{cursor: cursor}, nil
}

// FindRepairByID finds a repair record by its ID.
func (c *MongoRepairCollection) FindRepairByID(ctx context.Context, id string) (*models.RepairRecord, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var repair models.RepairRecord
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&repair)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("repair record not found")
		}
		return nil, err
	}
	return &repair, nil
}

// UpdateRepairStatus sets the status of a repair record by its ID.
func (c *MongoRepairCollection) UpdateRepairStatus(ctx context.Context, id string, status string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("repair record not found")
	}
	return nil
}
