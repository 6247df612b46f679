package jwt

import (
	"testing"
	"time"

	"chessclub/backend/internal/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestTokenRoundTrip(t *testing.T) {
	withConfig(t, &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour})

	token, err := GenerateToken(42)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)

	other, err := GenerateToken(42)
	require.NoError(t, err)
	otherClaims, err := ParseToken(other)
	require.NoError(t, err)
	assert.NotEqual(t, claims.TokenID, otherClaims.TokenID)
}

func TestParseTokenRejects(t *testing.T) {
	withConfig(t, &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour})

	t.Run("WrongSecret", func(t *testing.T) {
		forged := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
			"sub": 1, "exp": time.Now().Add(time.Hour).Unix(),
		})
		s, err := forged.SignedString([]byte("other-secret"))
		require.NoError(t, err)
		_, err = ParseToken(s)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
			"sub": 1, "exp": time.Now().Add(-time.Minute).Unix(),
		})
		s, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = ParseToken(s)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken("not-a-token")
		assert.Error(t, err)
	})
}
