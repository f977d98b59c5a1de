package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Write acknowledgements returned to clients, shaped like the driver results.

type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CheckoutResult is the outcome of turning a cart into a payment.
type CheckoutResult struct {
	PaymentResult  InsertResult `json:"paymentResult"`
	DeleteResult   DeleteResult `json:"deleteResult"`
	CleanupPending bool         `json:"cleanupPending,omitempty"`
}
