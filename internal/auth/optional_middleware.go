package auth

import (
	"chessclub/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a token and sets the userID if present, valid
// and not revoked, but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := jwt.ParseToken(tokenString); err == nil && !isRevoked(c, claims) {
				c.Set(userIDKey, claims.UserID)
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}
