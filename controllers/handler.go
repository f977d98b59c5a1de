package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"pharma-place/auth"
	"pharma-place/logger"
	"pharma-place/middleware"
	"pharma-place/models"
	"pharma-place/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	RoleOf(ctx context.Context, email string) (models.Role, error)
	Create(ctx context.Context, user models.User) (models.InsertResult, error)
	SetRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category models.Category) (models.InsertResult, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type MedicineStore interface {
	List(ctx context.Context) ([]models.Medicine, error)
	Get(ctx context.Context, id string) (*models.Medicine, error)
	Create(ctx context.Context, medicine models.Medicine) (models.InsertResult, error)
	ListByOwner(ctx context.Context, email string) ([]models.Medicine, error)
	ListSlider(ctx context.Context) ([]models.Medicine, error)
	ListDiscounted(ctx context.Context) ([]models.Medicine, error)
	SetSliderStatus(ctx context.Context, id, status string) (models.UpdateResult, error)
}

type CartStore interface {
	Find(ctx context.Context, email, name string) (*models.CartItem, error)
	Get(ctx context.Context, id string) (*models.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Create(ctx context.Context, item models.CartItem) (models.InsertResult, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
	DeleteByEmail(ctx context.Context, email string) (models.DeleteResult, error)
}

type PaymentStore interface {
	List(ctx context.Context) ([]models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (models.UpdateResult, error)
	Checkout(ctx context.Context, p models.Payment) (models.CheckoutResult, error)
}

type ReportStore interface {
	AdminStats(ctx context.Context) (models.AdminStats, error)
	SalesReport(ctx context.Context) ([]models.Payment, error)
	SellerSales(ctx context.Context, email string, role models.Role) ([]models.SellerSale, error)
}

type TokenIssuer interface {
	Issue(payload map[string]interface{}) (string, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, r io.Reader, contentType, folder string) (string, error)
}

// Handler serves every route. Uploader may be nil when no bucket is configured.
type Handler struct {
	Users      UserStore
	Categories CategoryStore
	Medicines  MedicineStore
	Carts      CartStore
	Payments   PaymentStore
	Reports    ReportStore
	Tokens     TokenIssuer
	Gateway    payment.Gateway
	Uploader   ImageUploader
}

func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "PharmaPlace server is running")
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
}

func notOwner(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "unauthorized access"})
}

// respondError maps store errors onto status codes. Anything unexpected is
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidID):
		badRequest(c, "invalid id")
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// caller returns the verified identity; routes using it always sit behind
// VerifyToken.
func caller(c *gin.Context) *auth.Identity {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return &auth.Identity{}
	}
	return id
}
