package jwt

import (
	"errors"
	"fmt"
	"time"

	"chessclub/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the fields the API reads back from a token.
type Claims struct {
	UserID    uint
	TokenID   string
	ExpiresAt time.Time
}

func secret() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

func ttl() time.Duration {
	if config.AppConfig.JWTTTL > 0 {
		return config.AppConfig.JWTTTL
	}
	return time.Hour * 24 * 7
}

// GenerateToken creates a new JWT for a given user ID.
func GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
		"exp": now.Add(ttl()).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret())
}

// ParseToken verifies the signature and expiry of tokenString.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := mapClaims["sub"].(float64)
	if !ok || sub <= 0 {
		return nil, errors.New("token has no subject")
	}
	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("token has no expiry")
	}
	jti, _ := mapClaims["jti"].(string)

	return &Claims{UserID: uint(sub), TokenID: jti, ExpiresAt: exp.Time}, nil
}
