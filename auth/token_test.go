package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(map[string]interface{}{"email": "buyer@pharma.test", "name": "Buyer"})
	require.NoError(t, err)

	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "buyer@pharma.test", id.Email)
	assert.Equal(t, "Buyer", id.Claims["name"])

	exp, ok := id.Claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := id.Claims["iat"].(float64)
	require.True(t, ok)
	assert.Equal(t, time.Hour.Seconds(), exp-iat)
}

func TestIssueRequiresEmail(t *testing.T) {
	svc := NewTokenService("test-secret", 0)

	_, err := svc.Issue(map[string]interface{}{"name": "nobody"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Issue(map[string]interface{}{"email": "  "})
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestVerifyFailures(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	t.Run("Malformed", func(t *testing.T) {
		_, err := svc.Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})

	t.Run("Expired", func(t *testing.T) {
		old := NewTokenService("test-secret", time.Hour)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := old.Issue(map[string]interface{}{"email": "late@pharma.test"})
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, err := other.Issue(map[string]interface{}{"email": "x@pharma.test"})
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenSignature)
	})

	t.Run("Non HMAC Method", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"email": "x@pharma.test",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenSignature)
	})

	t.Run("Missing Exp", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": "x@pharma.test",
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Missing Email", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc "))
	assert.Empty(t, BearerToken("Basic user:pass"))
	assert.Empty(t, BearerToken("abc"))
	assert.Empty(t, BearerToken(""))
}
