package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspacoVida/spa-portal/internal/models"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestFromToken_ExtractsClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-7", "role": "MANAGER"})

	sess, err := FromToken(token)

	require.NoError(t, err)
	assert.Equal(t, "user-7", sess.UserID())
	assert.Equal(t, models.RoleManager, sess.Role())
	assert.True(t, sess.Authenticated())
}

func TestFromToken_DefaultsRoleToClient(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-7"})

	sess, err := FromToken(token)

	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, sess.Role())
}

func TestFromToken_EmptyTokenIsAnonymous(t *testing.T) {
	sess, err := FromToken("")

	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
}

func TestFromToken_GarbageToken(t *testing.T) {
	_, err := FromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestFromToken_MissingSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"role": "CLIENT"})

	_, err := FromToken(token)

	assert.Error(t, err)
}

func TestHTTPClient_AttachesBearerCredential(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-1"})
	sess, err := FromToken(token)
	require.NoError(t, err)

	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	_, err = sess.HTTPClient(5 * time.Second).Get(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Bearer "+token, got)
}

func TestClear_RunsTeardownAndDropsCredential(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-1"})
	sess, err := FromToken(token)
	require.NoError(t, err)

	cleared := 0
	sess.OnClear(func() { cleared++ })
	sess.OnClear(func() { cleared++ })

	sess.Clear()

	assert.Equal(t, 2, cleared)
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token())

	// sem credencial, o transport não injeta header
	var got = "sentinel"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	_, err = sess.HTTPClient(5 * time.Second).Get(srv.URL)
	require.NoError(t, err)
	assert.Empty(t, got)
}
