package services

import (
	"context"
	"time"

	"pharma-place/database"
	"pharma-place/logger"
	"pharma-place/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// sweepGrace keeps the sweeper away from checkouts that are still running.
const sweepGrace = time.Minute

type PaymentService struct {
	payments *mongo.Collection
	carts    *mongo.Collection
	now      func() time.Time
}

func NewPaymentService(db *database.DB) *PaymentService {
	return &PaymentService{
		payments: db.Collection(database.Payments),
		carts:    db.Collection(database.Carts),
		now:      time.Now,
	}
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return findAll[models.Payment](ctx, s.payments, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return findAll[models.Payment](ctx, s.payments, bson.M{"email": email}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (s *PaymentService) Patch(ctx context.Context, id string, fields map[string]interface{}) (models.UpdateResult, error) {
	return updateByID(ctx, s.payments, id, bson.M{"$set": setFields(fields)})
}

// Checkout records the payment and then removes the cart lines it paid for.
//
// The payment is written first with cartsCleared=false. If the cart delete
// fails the payment stays, the result is flagged CleanupPending and
// SweepPendingCleanups finishes the job later.
func (s *PaymentService) Checkout(ctx context.Context, p models.Payment) (models.CheckoutResult, error) {
	p, cartIDs, err := s.prepare(p)
	if err != nil {
		return models.CheckoutResult{}, err
	}

	inserted, err := insert(ctx, s.payments, p)
	if err != nil {
		return models.CheckoutResult{}, err
	}
	result := models.CheckoutResult{PaymentResult: inserted}
	if len(cartIDs) == 0 {
		result.DeleteResult = models.DeleteResult{Acknowledged: true}
		return result, nil
	}

	log := logger.FromCtx(ctx).With(zap.String("payment_id", inserted.InsertedID.Hex()))

	deleted, err := s.clearCarts(ctx, inserted.InsertedID, cartIDs)
	if err != nil {
		log.Warn("payment stored but cart cleanup failed", zap.Strings("cart_ids", p.CartIDs), zap.Error(err))
		result.CleanupPending = true
		return result, nil
	}
	result.DeleteResult = deleted
	return result, nil
}

// prepare validates every referenced id and fills in the server-owned fields.
func (s *PaymentService) prepare(p models.Payment) (models.Payment, []primitive.ObjectID, error) {
	cartIDs, err := ObjectIDs(p.CartIDs)
	if err != nil {
		return models.Payment{}, nil, err
	}
	if _, err := ObjectIDs(p.MedicineIDs); err != nil {
		return models.Payment{}, nil, err
	}

	now := s.now().UTC()
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	if p.Date.IsZero() {
		p.Date = now
	}
	if p.CartIDs == nil {
		p.CartIDs = []string{}
	}
	if p.MedicineIDs == nil {
		p.MedicineIDs = []string{}
	}
	p.ID = primitive.NilObjectID
	p.CreatedAt = now
	p.CartsCleared = len(cartIDs) == 0
	return p, cartIDs, nil
}

// pendingCleanupFilter matches payments left with carts to clear. It keys on
// the server-set createdAt; date is whatever the client sent.
func pendingCleanupFilter(now time.Time) bson.M {
	return bson.M{
		"cartsCleared": false,
		"createdAt":    bson.M{"$lt": now.UTC().Add(-sweepGrace)},
	}
}

// clearCarts deletes the given cart lines and marks the payment as settled.
// Both steps are safe to repeat.
func (s *PaymentService) clearCarts(ctx context.Context, paymentID primitive.ObjectID, cartIDs []primitive.ObjectID) (models.DeleteResult, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		return models.DeleteResult{}, err
	}
	deleted := models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}

	if _, err := s.payments.UpdateOne(ctx, bson.M{"_id": paymentID}, bson.M{"$set": bson.M{"cartsCleared": true}}); err != nil {
		// carts are gone; the sweeper will find nothing left to delete and
		// just flip the flag
		logger.FromCtx(ctx).Warn("could not mark payment carts cleared", zap.String("payment_id", paymentID.Hex()), zap.Error(err))
	}
	return deleted, nil
}

// SweepPendingCleanups retries the cart delete for every payment whose
// checkout did not finish it. It returns how many payments were settled.
func (s *PaymentService) SweepPendingCleanups(ctx context.Context) (int, error) {
	pending, err := findAll[models.Payment](ctx, s.payments, pendingCleanupFilter(s.now()))
	if err != nil {
		return 0, err
	}

	log := logger.FromCtx(ctx)
	settled := 0
	for _, p := range pending {
		cartIDs, err := ObjectIDs(p.CartIDs)
		if err != nil {
			log.Error("payment references invalid cart id", zap.String("payment_id", p.ID.Hex()), zap.Error(err))
			continue
		}
		deleted, err := s.clearCarts(ctx, p.ID, cartIDs)
		if err != nil {
			log.Warn("cart cleanup retry failed", zap.String("payment_id", p.ID.Hex()), zap.Error(err))
			continue
		}
		log.Info("cart cleanup completed",
			zap.String("payment_id", p.ID.Hex()),
			zap.Int64("deleted", deleted.DeletedCount),
		)
		settled++
	}
	return settled, nil
}
