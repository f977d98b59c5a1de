package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
)

type Payment struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Date          time.Time          `json:"date" bson:"date"`
	Status        string             `json:"status" bson:"status"`
	CartIDs       []string           `json:"cartIds" bson:"cartIds"`
	MedicineIDs   []string           `json:"medicineIds" bson:"medicineIds"`
	// CreatedAt is set by the server when the payment is stored.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	// CartsCleared is false until the referenced cart items are confirmed deleted.
	CartsCleared bool `json:"cartsCleared" bson:"cartsCleared"`
}
