package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/blslogistica/cargoflow/pkg/utils"
)

// AuthMiddleware gates every fleet endpoint behind a valid operator token and
// stores the operator's identity on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(401, gin.H{"error": "Authorization required"})
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(401, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set("userId", uint(claims["id"].(float64)))
		c.Set("username", claims["username"].(string))
		c.Next()
	}
}

// bearerToken reads the token from the Authorization header, falling back to
// the token query parameter for websocket connections, where browsers cannot
// set headers.
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if rest, found := strings.CutPrefix(header, "Bearer "); found {
			return rest
		}
		return ""
	}
	return c.Query("token")
}
