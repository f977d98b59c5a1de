package controllers

import (
	"errors"
	"net/http"

	"pharma-place/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.Reports.AdminStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) SalesReport(c *gin.Context) {
	payments, err := h.Reports.SalesReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// SellerSales lists purchases of the caller's own medicines. The email query
// parameter is optional but must name the caller when present.
func (h *Handler) SellerSales(c *gin.Context) {
	ctx := c.Request.Context()
	email := caller(c).Email
	if q := c.Query("email"); q != "" && q != email {
		notOwner(c)
		return
	}

	role, err := h.Users.RoleOf(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusOK, []models.SellerSale{})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	sales, err := h.Reports.SellerSales(ctx, email, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
