package services

import (
	"context"

	"pharma-place/database"
	"pharma-place/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryService struct {
	categories *mongo.Collection
}

func NewCategoryService(db *database.DB) *CategoryService {
	return &CategoryService{categories: db.Collection(database.Categories)}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return findAll[models.Category](ctx, s.categories, bson.M{})
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Category](ctx, s.categories, bson.M{"_id": oid})
}

func (s *CategoryService) Create(ctx context.Context, category models.Category) (models.InsertResult, error) {
	category.ID = primitive.NilObjectID
	return insert(ctx, s.categories, category)
}

// Update sets the given fields, leaving the rest of the document alone.
func (s *CategoryService) Update(ctx context.Context, id string, fields map[string]interface{}) (models.UpdateResult, error) {
	return updateByID(ctx, s.categories, id, bson.M{"$set": setFields(fields)})
}

func (s *CategoryService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, s.categories, id)
}
