package services

import (
	"context"

	"pharma-place/database"
	"pharma-place/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MedicineService struct {
	medicines *mongo.Collection
}

func NewMedicineService(db *database.DB) *MedicineService {
	return &MedicineService{medicines: db.Collection(database.Medicines)}
}

func (s *MedicineService) List(ctx context.Context) ([]models.Medicine, error) {
	return findAll[models.Medicine](ctx, s.medicines, bson.M{})
}

func (s *MedicineService) Get(ctx context.Context, id string) (*models.Medicine, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Medicine](ctx, s.medicines, bson.M{"_id": oid})
}

func (s *MedicineService) Create(ctx context.Context, medicine models.Medicine) (models.InsertResult, error) {
	medicine.ID = primitive.NilObjectID
	return insert(ctx, s.medicines, medicine)
}

func (s *MedicineService) ListByOwner(ctx context.Context, email string) ([]models.Medicine, error) {
	return findAll[models.Medicine](ctx, s.medicines, bson.M{"addedBy": email})
}

func (s *MedicineService) ListSlider(ctx context.Context) ([]models.Medicine, error) {
	return findAll[models.Medicine](ctx, s.medicines, bson.M{"sliderStatus": models.SliderAdd})
}

// ListDiscounted returns medicines that carry a discount field at all; a
// stored discount of 0 still counts.
func (s *MedicineService) ListDiscounted(ctx context.Context) ([]models.Medicine, error) {
	return findAll[models.Medicine](ctx, s.medicines, bson.M{"discount": bson.M{"$exists": true}})
}

// SetSliderStatus moves a medicine through the advertisement workflow. An
// empty status removes the field.
func (s *MedicineService) SetSliderStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"sliderStatus": status}}
	if status == models.SliderUnset {
		update = bson.M{"$unset": bson.M{"sliderStatus": ""}}
	}
	return updateByID(ctx, s.medicines, id, update)
}
