package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CartItem struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Name          string             `json:"name" bson:"name"`
	MedicineID    string             `json:"medicineId,omitempty" bson:"medicineId,omitempty"`
	Price         float64            `json:"price,omitempty" bson:"price,omitempty"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	OrderQuantity int                `json:"orderQuantity" bson:"orderQuantity"`
}
