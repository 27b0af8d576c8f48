package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/blslogistica/cargoflow/internal/middleware"
	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/pkg/utils"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/choferes", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"userId": c.GetUint("userId")})
	})
	return r
}

func validToken(t *testing.T) string {
	t.Helper()
	user := &models.User{Username: "admin", Email: "admin@example.com"}
	user.ID = 7
	token, err := utils.GenerateToken(user)
	require.NoError(t, err)
	return token
}

// TestAuthMiddleware_missingToken verifies that a request without credentials
// is rejected with 401.
func TestAuthMiddleware_missingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/choferes", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

// TestAuthMiddleware_bearerHeader verifies the standard header path.
func TestAuthMiddleware_bearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/choferes", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"userId":7`)
}

// TestAuthMiddleware_queryToken verifies the websocket fallback: the token
// may arrive as a query parameter instead of a header.
func TestAuthMiddleware_queryToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/choferes?token="+validToken(t), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}

// TestAuthMiddleware_malformedHeader verifies that a non-Bearer Authorization
// header is rejected rather than read as a raw token.
func TestAuthMiddleware_malformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/choferes", nil)
	req.Header.Set("Authorization", validToken(t))
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}
