package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pharma-place/logger"
	"pharma-place/models"
	"pharma-place/payment"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Price *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Price == nil {
		badRequest(c, "price is required")
		return
	}
	amount := payment.ToMinorUnits(*input.Price)
	if amount <= 0 {
		badRequest(c, "price must be positive")
		return
	}

	secret, err := h.Gateway.CreateIntent(c.Request.Context(), amount)
	if errors.Is(err, payment.ErrInvalidAmount) {
		badRequest(c, "price must be positive")
		return
	}
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("payment intent failed", zap.Int64("amount", amount), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment processor error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

type checkoutRequest struct {
	Email         string     `json:"email"`
	Price         *float64   `json:"price"`
	TransactionID string     `json:"transactionId"`
	Date          *time.Time `json:"date"`
	Status        string     `json:"status"`
	CartIDs       []string   `json:"cartIds"`
	MedicineIDs   []string   `json:"medicineIds"`
}

// Checkout stores a payment and retires the cart lines it covers.
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payment")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		badRequest(c, "email is required")
		return
	}
	if req.Price == nil || *req.Price < 0 {
		badRequest(c, "price must not be negative")
		return
	}
	if !validIDs(req.CartIDs) || !validIDs(req.MedicineIDs) {
		badRequest(c, "cartIds and medicineIds must be valid ids")
		return
	}

	p := models.Payment{
		Email:         req.Email,
		Price:         *req.Price,
		TransactionID: req.TransactionID,
		Status:        req.Status,
		CartIDs:       req.CartIDs,
		MedicineIDs:   req.MedicineIDs,
	}
	if req.Date != nil {
		p.Date = req.Date.UTC()
	}

	res, err := h.Payments.Checkout(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func validIDs(ids []string) bool {
	for _, id := range ids {
		if !primitive.IsValidObjectID(id) {
			return false
		}
	}
	return true
}

func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.Payments.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) ListPaymentsByEmail(c *gin.Context) {
	payments, err := h.Payments.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) PatchPayment(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil || len(models.SplitExtra(fields)) == 0 {
		badRequest(c, "nothing to update")
		return
	}

	res, err := h.Payments.Patch(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
