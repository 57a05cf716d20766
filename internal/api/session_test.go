package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-test"))
	require.NoError(t, err)
	return token
}

func TestSessionClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"id":    float64(12),
		"email": "locataire@example.sn",
		"role":  "locataire",
		"exp":   exp.Unix(),
	})

	c := newTestClient(t, http.NewServeMux())
	c.Session().SetToken(token)

	claims, err := c.Session().Claims()
	require.NoError(t, err)
	assert.Equal(t, int64(12), claims.UserID)
	assert.Equal(t, "locataire@example.sn", claims.Email)
	assert.Equal(t, "locataire", claims.Role)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestSessionClaimsWithoutToken(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	_, err := c.Session().Claims()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestVerifyRequiresToken(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	_, err := c.Session().Verify(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.False(t, called)
}

func TestVerifyExpiredTokenForcesLogout(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "token expiré"})
	}))
	c.Session().SetToken("vieux-jeton")

	_, err := c.Session().Verify(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, c.Session().Active())
}

func TestLogoutIsLocal(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	c.Session().SetToken("jeton")
	c.Session().Logout()
	assert.False(t, c.Session().Active())
}
