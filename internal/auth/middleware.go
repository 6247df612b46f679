package auth

import (
	"log"
	"net/http"
	"strings"

	"chessclub/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey  = "userID"
	claimsKey  = "tokenClaims"
	authScheme = "Bearer"
)

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], authScheme) || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// isRevoked reports whether the token was logged out. A failed lookup lets the
// token through.
func isRevoked(c *gin.Context, claims *jwt.Claims) bool {
	if Revocations == nil || claims.TokenID == "" {
		return false
	}
	revoked, err := Revocations.IsRevoked(c.Request.Context(), claims.TokenID)
	if err != nil {
		log.Printf("auth: revocation lookup failed: %v", err)
		return false
	}
	return revoked
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token and
// stores the caller's id in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized."})
			return
		}

		claims, err := jwt.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if isRevoked(c, claims) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentUser returns the authenticated caller, if any.
func CurrentUser(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// CurrentClaims returns the parsed token of the authenticated caller.
func CurrentClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
