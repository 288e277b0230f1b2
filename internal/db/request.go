package db

import (
	"context"
	"fmt"

	"github.com/lankanwheels/dealership/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RequestCollection defines the interface for modification request operations.
type RequestCollection interface {
	InsertRequest(ctx context.Context, request models.ModificationRequest) error
	FindRequests(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error)
	FindRequestByID(ctx context.Context, id string) (*models.ModificationRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status string) error
}

// MongoRequestCollection implements RequestCollection for MongoDB.
type MongoRequestCollection struct {
	Collection *mongo.Collection
}

// InsertRequest inserts a modification request into the collection.
func (c *MongoRequestCollection) InsertRequest(ctx context.Context, request models.ModificationRequest) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := c.Collection.InsertOne(ctx, request)
	return err
}

// FindRequests queries modification requests from the collection.
func (c *MongoRequestCollection) FindRequests(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoCursor{cursor: cursor}, nil
}

// FindRequestByID finds a modification request by its ID.
func (c *MongoRequestCollection) FindRequestByID(ctx context.Context, id string) (*models.ModificationRequest, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var request models.ModificationRequest
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("request not found")
		}
		return nil, err
	}
	return &request, nil
}

// UpdateRequestStatus sets the status of a modification request by its ID.
func (c *MongoRequestCollection) UpdateRequestStatus(ctx context.Context, id string, status string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request not found")
	}
	return nil
}
