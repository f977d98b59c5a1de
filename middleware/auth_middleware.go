package middleware

import (
	"context"
	"errors"
	"net/http"

	"pharma-place/auth"
	"pharma-place/logger"
	"pharma-place/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

const (
	msgForbidden    = "forbidden access"
	msgUnauthorized = "unauthorized access"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Identity, error)
}

// RoleLookup resolves the stored role of a user by email, returning
// models.ErrNotFound when there is no such user.
type RoleLookup interface {
	RoleOf(ctx context.Context, email string) (models.Role, error)
}

// Access builds the per-route access checks. VerifyToken must run before any
// of the others.
type Access struct {
	tokens TokenVerifier
	roles  RoleLookup
}

func NewAccess(tokens TokenVerifier, roles RoleLookup) *Access {
	return &Access{tokens: tokens, roles: roles}
}

// IdentityFrom returns the identity attached by VerifyToken.
func IdentityFrom(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*auth.Identity)
	return id, ok && id != nil
}

func (a *Access) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgForbidden})
			return
		}

		id, err := a.tokens.Verify(auth.BearerToken(header))
		if err != nil {
			logger.FromCtx(c.Request.Context()).Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgForbidden})
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentitySource extracts the identity a request claims to act for.
type IdentitySource func(c *gin.Context) string

func PathParam(name string) IdentitySource {
	return func(c *gin.Context) string { return c.Param(name) }
}

func QueryParam(name string) IdentitySource {
	return func(c *gin.Context) string { return c.Query(name) }
}

// VerifySelf rejects requests whose claimed identity is not the token's email.
func (a *Access) VerifySelf(source IdentitySource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgForbidden})
			return
		}
		if source(c) != id.Email {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgUnauthorized})
			return
		}
		c.Next()
	}
}

func (a *Access) VerifyAdmin() gin.HandlerFunc {
	return a.VerifyRole(models.RoleAdmin)
}

// VerifyRole lets the request through only if the caller's stored role is one
// of allowed. A caller with no user record is treated like any other mismatch.
func (a *Access) VerifyRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgForbidden})
			return
		}

		role, err := a.roles.RoleOf(c.Request.Context(), id.Email)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			logger.FromCtx(c.Request.Context()).Error("role lookup failed",
				zap.String("email", id.Email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		for _, r := range allowed {
			if err == nil && role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
	}
}
