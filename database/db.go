package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Name = "PharmaPlace"

// Collection names.
const (
	Users      = "users"
	Categories = "categories"
	Medicines  = "medicines"
	Carts      = "carts"
	Payments   = "payments"
)

// DB owns the client and hands out collections to the stores.
type DB struct {
	Client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB using the stable server API and pings it before returning.
func Connect(ctx context.Context, uri string) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return New(client.Database(Name)), nil
}

// New wraps an existing database handle.
func New(db *mongo.Database) *DB {
	return &DB{Client: db.Client(), db: db}
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) Disconnect(ctx context.Context) error {
	if d == nil || d.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return d.Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the stores rely on. The unique email index
// backs the upsert-by-email user creation.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		Users: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		Carts:     {{Keys: bson.D{{Key: "email", Value: 1}, {Key: "name", Value: 1}}}},
		Medicines: {{Keys: bson.D{{Key: "addedBy", Value: 1}}}},
		Payments: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
			{Keys: bson.D{{Key: "cartsCleared", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
	}
	for coll, models := range specs {
		if _, err := d.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
