package utils_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/pkg/utils"
)

// TestGenerateAndValidateToken verifies the round trip and that the claims
// carry the user identity.
func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{Username: "admin", Email: "admin@example.com"}
	user.ID = 42

	tokenString, err := utils.GenerateToken(user)
	require.NoError(t, err)

	token, err := utils.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, "admin@example.com", claims["email"])
	require.Equal(t, float64(42), claims["id"])
}

// TestValidateToken_wrongSecret verifies that a token signed with another
// secret is rejected.
func TestValidateToken_wrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	user := &models.User{Username: "admin", Email: "admin@example.com"}
	tokenString, err := utils.GenerateToken(user)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = utils.ValidateToken(tokenString)
	require.Error(t, err)
}
