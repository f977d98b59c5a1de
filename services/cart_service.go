package services

import (
	"context"

	"pharma-place/database"
	"pharma-place/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartService struct {
	carts *mongo.Collection
}

func NewCartService(db *database.DB) *CartService {
	return &CartService{carts: db.Collection(database.Carts)}
}

// Find looks up the cart line a user already holds for a medicine name.
func (s *CartService) Find(ctx context.Context, email, name string) (*models.CartItem, error) {
	return findOne[models.CartItem](ctx, s.carts, bson.M{"email": email, "name": name})
}

func (s *CartService) Get(ctx context.Context, id string) (*models.CartItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.CartItem](ctx, s.carts, bson.M{"_id": oid})
}

func (s *CartService) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	return findAll[models.CartItem](ctx, s.carts, bson.M{"email": email})
}

func (s *CartService) Create(ctx context.Context, item models.CartItem) (models.InsertResult, error) {
	item.ID = primitive.NilObjectID
	return insert(ctx, s.carts, item)
}

func (s *CartService) UpdateQuantity(ctx context.Context, id string, quantity int) (models.UpdateResult, error) {
	return updateByID(ctx, s.carts, id, bson.M{"$set": bson.M{"orderQuantity": quantity}})
}

func (s *CartService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, s.carts, id)
}

// DeleteByEmail empties a user's cart. Deleting nothing is not an error.
func (s *CartService) DeleteByEmail(ctx context.Context, email string) (models.DeleteResult, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.carts.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
