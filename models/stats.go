package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type AdminStats struct {
	Users         int64   `json:"users"`
	MedicineItems int64   `json:"medicineItems"`
	Orders        int64   `json:"orders"`
	Revenue       float64 `json:"revenue"`
	PaidTotal     float64 `json:"paidTotal"`
	PendingTotal  float64 `json:"pendingTotal"`
}

// SellerSale is one purchased medicine joined back to the seller who listed it.
type SellerSale struct {
	PaymentID  primitive.ObjectID `json:"paymentId" bson:"paymentId"`
	BuyerEmail string             `json:"buyerEmail" bson:"buyerEmail"`
	Status     string             `json:"status" bson:"status"`
	Price      float64            `json:"price" bson:"price"`
	Medicine   Medicine           `json:"medicine" bson:"medicine"`
}
