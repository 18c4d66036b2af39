package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"symphony-forum/helper"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-secret")

func newRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &helper.HTTPHelper{}

	router := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(testSecret, h)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(h, roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
	})
	router.GET("/private", handlers...)
	return router
}

func serve(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	token, err := NewToken(testSecret, "u1", "alice", "admin", time.Hour)
	require.NoError(t, err)

	w := serve(newRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","role":"admin"}`, w.Body.String())
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	token, err := NewToken(testSecret, "u1", "alice", "admin", -time.Minute)
	require.NoError(t, err)

	w := serve(newRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthMiddlewareRejectsNonHMACToken(t *testing.T) {
	claims := &Claims{
		UserID: "u1",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := serve(newRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), `"user_id":"u1"`)
}

func TestAuthMiddlewareRejectsForeignSecret(t *testing.T) {
	token, err := NewToken([]byte("someone-else"), "u1", "alice", "admin", time.Hour)
	require.NoError(t, err)

	w := serve(newRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRequiresBearerHeader(t *testing.T) {
	token, err := NewToken(testSecret, "u1", "alice", "admin", time.Hour)
	require.NoError(t, err)

	router := newRouter()
	assert.Equal(t, http.StatusUnauthorized, serve(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, token).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "Bearer garbage").Code)
}

func TestRequireRole(t *testing.T) {
	admin, err := NewToken(testSecret, "u1", "alice", "admin", time.Hour)
	require.NoError(t, err)
	member, err := NewToken(testSecret, "u2", "bob", "member", time.Hour)
	require.NoError(t, err)

	router := newRouter("admin", "editor")
	assert.Equal(t, http.StatusOK, serve(router, "Bearer "+admin).Code)

	w := serve(router, "Bearer "+member)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}

func TestRequireRoleWithoutAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &helper.HTTPHelper{}

	router := gin.New()
	router.GET("/private", RequireRole(h, "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User role not found")
}
