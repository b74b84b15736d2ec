package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"changaya_backend/internal/auth"
	"changaya_backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(sessions *auth.SessionCodec) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(sessions), func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity not attached"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id": identity.UserID,
			"role":    identity.Role,
		})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// expiredSessionToken signs a session-shaped token that expired an hour
// ago, using the same algorithm, audience and secret as the codec.
func expiredSessionToken(t *testing.T, secret string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"uid":   "u1",
		"email": "a@b.com",
		"role":  "worker",
		"aud":   "changaya/session",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := protectedRouter(auth.NewSessionCodec("secret"))

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header missing or invalid")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := protectedRouter(auth.NewSessionCodec("secret"))

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "Bearer ", "token-without-scheme"} {
		w := doRequest(router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := protectedRouter(auth.NewSessionCodec("secret"))

	w := doRequest(router, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	router := protectedRouter(auth.NewSessionCodec("secret"))

	token, err := auth.NewSessionCodec("other-secret").Encode("u1", "a@b.com", models.UserRoleWorker)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router := protectedRouter(auth.NewSessionCodec("secret"))

	w := doRequest(router, "Bearer "+expiredSessionToken(t, "secret"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	sessions := auth.NewSessionCodec("secret")
	router := protectedRouter(sessions)

	token, err := sessions.Encode("u1", "a@b.com", models.UserRoleEmployer)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"employer"`)
}

func TestRequireRoles(t *testing.T) {
	sessions := auth.NewSessionCodec("secret")

	router := gin.New()
	router.GET("/admin-only", AuthMiddleware(sessions), RequireRoles("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	workerToken, err := sessions.Encode("u1", "a@b.com", models.UserRoleWorker)
	require.NoError(t, err)
	adminToken, err := sessions.Encode("u2", "admin@b.com", models.UserRoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+workerToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
