package services

import (
	"context"

	"pharma-place/database"
	"pharma-place/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReportService struct {
	users     *mongo.Collection
	medicines *mongo.Collection
	payments  *mongo.Collection
}

func NewReportService(db *database.DB) *ReportService {
	return &ReportService{
		users:     db.Collection(database.Users),
		medicines: db.Collection(database.Medicines),
		payments:  db.Collection(database.Payments),
	}
}

type statusTotal struct {
	Status string  `bson:"_id"`
	Total  float64 `bson:"total"`
}

// AdminStats counts the main collections and sums payment prices by status.
// Any status other than paid is reported as pending.
func (s *ReportService) AdminStats(ctx context.Context) (models.AdminStats, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var stats models.AdminStats
	var err error

	if stats.Users, err = s.users.EstimatedDocumentCount(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.MedicineItems, err = s.medicines.EstimatedDocumentCount(ctx); err != nil {
		return models.AdminStats{}, err
	}
	if stats.Orders, err = s.payments.EstimatedDocumentCount(ctx); err != nil {
		return models.AdminStats{}, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cursor, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return models.AdminStats{}, err
	}
	defer cursor.Close(ctx)

	var totals []statusTotal
	if err := cursor.All(ctx, &totals); err != nil {
		return models.AdminStats{}, err
	}
	for _, t := range totals {
		stats.Revenue += t.Total
		switch t.Status {
		case models.PaymentPaid:
			stats.PaidTotal += t.Total
		default:
			stats.PendingTotal += t.Total
		}
	}
	return stats, nil
}

func (s *ReportService) SalesReport(ctx context.Context) ([]models.Payment, error) {
	return findAll[models.Payment](ctx, s.payments, bson.M{})
}

// SellerSales joins every purchased medicine id back to the medicine and its
// owner, keeping the lines sold by the given seller.
func (s *ReportService) SellerSales(ctx context.Context, email string, role models.Role) ([]models.SellerSale, error) {
	pipeline := sellerSalesPipeline(email, role)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sales := []models.SellerSale{}
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// toObjectIDOrNull converts a hex string field to an ObjectID. Strings that
// are not ids become null and simply match no medicine.
func toObjectIDOrNull(field string) bson.D {
	return bson.D{{Key: "$convert", Value: bson.D{
		{Key: "input", Value: field},
		{Key: "to", Value: "objectId"},
		{Key: "onError", Value: nil},
		{Key: "onNull", Value: nil},
	}}}
}

func sellerSalesPipeline(email string, role models.Role) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$medicineIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.Medicines},
			{Key: "let", Value: bson.D{{Key: "medicineId", Value: toObjectIDOrNull("$medicineIds")}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$medicineId"}}}}}}},
			}},
			{Key: "as", Value: "medicine"},
		}}},
		{{Key: "$unwind", Value: "$medicine"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.Users},
			{Key: "localField", Value: "medicine.addedBy"},
			{Key: "foreignField", Value: "email"},
			{Key: "as", Value: "seller"},
		}}},
		{{Key: "$unwind", Value: "$seller"}},
		{{Key: "$match", Value: bson.D{
			{Key: "seller.email", Value: email},
			{Key: "seller.role", Value: role},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "paymentId", Value: "$_id"},
			{Key: "buyerEmail", Value: "$email"},
			{Key: "status", Value: 1},
			{Key: "price", Value: 1},
			{Key: "medicine", Value: 1},
		}}},
	}
}
