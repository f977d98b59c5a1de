package controllers

import (
	"net/http"
	"strings"

	"pharma-place/models"

	"github.com/gin-gonic/gin"
)

// FindCartItem looks up one cart line by owner and medicine name.
func (h *Handler) FindCartItem(c *gin.Context) {
	email, name := c.Query("email"), c.Query("medicineName")
	if email == "" || name == "" {
		badRequest(c, "email and medicineName are required")
		return
	}

	item, err := h.Carts.Find(c.Request.Context(), email, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) ListCartItems(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email is required")
		return
	}

	items, err := h.Carts.ListByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AddToCart(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "invalid cart item")
		return
	}

	id := caller(c)
	if item.Email == "" {
		item.Email = id.Email
	}
	if item.Email != id.Email {
		notOwner(c)
		return
	}
	if strings.TrimSpace(item.Name) == "" {
		badRequest(c, "name is required")
		return
	}
	if item.OrderQuantity == 0 {
		item.OrderQuantity = 1
	}
	if item.OrderQuantity < 1 {
		badRequest(c, "orderQuantity must be at least 1")
		return
	}

	res, err := h.Carts.Create(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var input struct {
		OrderQuantity *int `json:"orderQuantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.OrderQuantity == nil || *input.OrderQuantity < 1 {
		badRequest(c, "orderQuantity must be at least 1")
		return
	}
	if !h.ownsCartItem(c) {
		return
	}

	res, err := h.Carts.UpdateQuantity(c.Request.Context(), c.Param("id"), *input.OrderQuantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteCartItem(c *gin.Context) {
	if !h.ownsCartItem(c) {
		return
	}

	res, err := h.Carts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ClearCart empties the cart of the email in the query; the route checks it
// matches the caller.
func (h *Handler) ClearCart(c *gin.Context) {
	res, err := h.Carts.DeleteByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ownsCartItem writes the error response itself and reports whether the
// handler may go on.
func (h *Handler) ownsCartItem(c *gin.Context) bool {
	item, err := h.Carts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return false
	}
	if item.Email != caller(c).Email {
		notOwner(c)
		return false
	}
	return true
}
