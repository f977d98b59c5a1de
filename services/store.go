package services

import (
	"context"
	"errors"
	"time"

	"pharma-place/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

func objectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, models.ErrInvalidID
	}
	return id, nil
}

// ObjectIDs parses every hex id, failing on the first bad one.
func ObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := objectID(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// findAll runs a find and decodes every document. The result is never nil so
// handlers always answer with a JSON array.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc interface{}) (models.InsertResult, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// updateByID applies update and reports models.ErrNotFound when nothing matched.
func updateByID(ctx context.Context, coll *mongo.Collection, hex string, update interface{}) (models.UpdateResult, error) {
	id, err := objectID(hex)
	if err != nil {
		return models.UpdateResult{}, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		return models.UpdateResult{}, models.ErrNotFound
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, hex string) (models.DeleteResult, error) {
	id, err := objectID(hex)
	if err != nil {
		return models.DeleteResult{}, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, err
	}
	if res.DeletedCount == 0 {
		return models.DeleteResult{}, models.ErrNotFound
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// setFields turns a loose patch body into a $set, dropping _id and operators.
func setFields(fields map[string]interface{}) bson.M {
	set := bson.M{}
	for k, v := range fields {
		if k == "_id" || k == "" || k[0] == '$' {
			continue
		}
		set[k] = v
	}
	return set
}
