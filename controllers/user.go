package controllers

import (
	"errors"
	"net/http"
	"strings"

	"pharma-place/auth"
	"pharma-place/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// IssueToken signs whatever identity payload the sign-in client sends.
func (h *Handler) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	token, err := h.Tokens.Issue(payload)
	if errors.Is(err, auth.ErrEmailRequired) {
		badRequest(c, "email is required")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UserRole reports the caller's role. An unknown user simply has no role.
func (h *Handler) UserRole(c *gin.Context) {
	role, err := h.Users.RoleOf(c.Request.Context(), c.Param("email"))
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"role":   role,
		"admin":  role == models.RoleAdmin,
		"seller": role == models.RoleSeller,
	})
}

// CreateUser registers a user on first sign-in. Signing in again is a no-op.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	var raw map[string]interface{}
	if err := c.ShouldBindBodyWith(&user, binding.JSON); err != nil {
		badRequest(c, "invalid user")
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		badRequest(c, "invalid user")
		return
	}
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		badRequest(c, "email is required")
		return
	}
	switch user.Role {
	case "", models.RoleUser, models.RoleSeller:
	default:
		badRequest(c, "role must be User or Seller")
		return
	}
	user.Profile = models.SplitExtra(raw, "email", "name", "photo", "role")

	res, err := h.Users.Create(c.Request.Context(), user)
	if errors.Is(err, models.ErrAlreadyExists) {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	h.setRole(c, models.RoleAdmin)
}

func (h *Handler) MakeSeller(c *gin.Context) {
	h.setRole(c, models.RoleSeller)
}

func (h *Handler) ResetRole(c *gin.Context) {
	h.setRole(c, models.RoleUser)
}

func (h *Handler) setRole(c *gin.Context, role models.Role) {
	res, err := h.Users.SetRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	res, err := h.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
