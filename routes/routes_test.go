package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharma-place/auth"
	"pharma-place/controllers"
	"pharma-place/middleware"
	"pharma-place/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRoles map[string]models.Role

func (f fixedRoles) RoleOf(_ context.Context, email string) (models.Role, error) {
	role, ok := f[email]
	if !ok {
		return "", models.ErrNotFound
	}
	return role, nil
}

func newRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("routes-test-secret", time.Hour)
	roles := fixedRoles{"user@b.c": models.RoleUser, "seller@b.c": models.RoleSeller}

	r := gin.New()
	SetupRoutes(r, &controllers.Handler{}, middleware.NewAccess(tokens, roles), []string{"http://localhost:5173"})
	return r, tokens
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var adminRoutes = []struct{ method, path string }{
	{http.MethodGet, "/users"},
	{http.MethodPatch, "/users/admin/65f0c0ffee0000000000abcd"},
	{http.MethodPatch, "/users/seller/65f0c0ffee0000000000abcd"},
	{http.MethodPatch, "/user/65f0c0ffee0000000000abcd"},
	{http.MethodDelete, "/user/65f0c0ffee0000000000abcd"},
	{http.MethodGet, "/payments"},
	{http.MethodPatch, "/payments/65f0c0ffee0000000000abcd"},
	{http.MethodGet, "/admin-stats"},
	{http.MethodGet, "/sales-report"},
	{http.MethodPatch, "/advertisement-status/65f0c0ffee0000000000abcd"},
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r, _ := newRouter(t)

	protected := append([]struct{ method, path string }{
		{http.MethodGet, "/users/admin/user@b.c"},
		{http.MethodGet, "/payments/user@b.c"},
		{http.MethodPost, "/carts"},
		{http.MethodPatch, "/carts/65f0c0ffee0000000000abcd"},
		{http.MethodDelete, "/carts/65f0c0ffee0000000000abcd"},
		{http.MethodDelete, "/carts?email=user@b.c"},
		{http.MethodGet, "/medicines-by-seller"},
		{http.MethodPatch, "/advertisement-request/65f0c0ffee0000000000abcd"},
	}, adminRoutes...)

	for _, rt := range protected {
		w := serve(r, rt.method, rt.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", rt.method, rt.path)
	}
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	r, tokens := newRouter(t)

	for _, email := range []string{"user@b.c", "seller@b.c", "unknown@b.c"} {
		tok, err := tokens.Issue(map[string]interface{}{"email": email})
		require.NoError(t, err)

		for _, rt := range adminRoutes {
			w := serve(r, rt.method, rt.path, tok)
			assert.Equal(t, http.StatusForbidden, w.Code, "%s %s as %s", rt.method, rt.path, email)
		}
	}
}

func TestSelfScopedRoutes(t *testing.T) {
	r, tokens := newRouter(t)
	tok, err := tokens.Issue(map[string]interface{}{"email": "user@b.c"})
	require.NoError(t, err)

	for _, path := range []string{"/users/admin/other@b.c", "/payments/other@b.c"} {
		w := serve(r, http.MethodGet, path, tok)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.JSONEq(t, `{"message":"unauthorized access"}`, w.Body.String())
	}

	w := serve(r, http.MethodDelete, "/carts?email=other@b.c", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLivenessAndCORS(t *testing.T) {
	r, _ := newRouter(t)

	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodOptions, "/carts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestImageRouteNeedsUploader(t *testing.T) {
	r, _ := newRouter(t)

	w := serve(r, http.MethodPost, "/medicines/image", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSConfig(t *testing.T) {
	all := corsConfig(nil)
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)

	star := corsConfig([]string{"*"})
	assert.True(t, star.AllowAllOrigins)

	listed := corsConfig([]string{"https://pharma.example"})
	assert.False(t, listed.AllowAllOrigins)
	assert.True(t, listed.AllowCredentials)
	assert.Equal(t, []string{"https://pharma.example"}, listed.AllowOrigins)
}
