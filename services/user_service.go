package services

import (
	"context"
	"errors"

	"pharma-place/database"
	"pharma-place/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	users *mongo.Collection
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{users: db.Collection(database.Users)}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, s.users, bson.M{})
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, s.users, bson.M{"email": email})
}

// RoleOf reports the stored role; a user saved without one is a plain User.
func (s *UserService) RoleOf(ctx context.Context, email string) (models.Role, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.Role == "" {
		return models.RoleUser, nil
	}
	return u.Role, nil
}

// Create inserts the user unless one with the same email exists, in which
// case it returns models.ErrAlreadyExists and writes nothing.
func (s *UserService) Create(ctx context.Context, user models.User) (models.InsertResult, error) {
	_, err := s.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return models.InsertResult{}, models.ErrAlreadyExists
	case !errors.Is(err, models.ErrNotFound):
		return models.InsertResult{}, err
	}

	user.ID = primitive.NilObjectID
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	res, err := insert(ctx, s.users, user)
	if mongo.IsDuplicateKeyError(err) {
		// lost a race with a concurrent sign-in for the same email
		return models.InsertResult{}, models.ErrAlreadyExists
	}
	return res, err
}

func (s *UserService) SetRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	return updateByID(ctx, s.users, id, bson.M{"$set": bson.M{"role": role}})
}

func (s *UserService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, s.users, id)
}
