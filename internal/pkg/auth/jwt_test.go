// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testManager() *JWTManager {
	cfg := &config.Config{}
	cfg.App.Name = "storefront-test"
	cfg.JWT.Secret = "test-secret-key-that-is-long-enough"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 7 * 24 * time.Hour
	return NewJWTManager(cfg)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := testManager()

	token, err := manager.GenerateAccessToken("cus_1", "jo@example.com", "tok_commerce")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cus_1", claims.CustomerID)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, "tok_commerce", claims.CommerceToken)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, "customer:cus_1", claims.Subject)
}

func TestRefreshTokenCarriesCommerceToken(t *testing.T) {
	manager := testManager()

	token, err := manager.GenerateRefreshToken("cus_1", "jo@example.com", "tok_commerce")
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
	assert.Equal(t, "tok_commerce", claims.CommerceToken)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	manager := testManager()

	refresh, err := manager.GenerateRefreshToken("cus_1", "jo@example.com", "tok_commerce")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	require.Error(t, err)

	access, err := manager.GenerateAccessToken("cus_1", "jo@example.com", "tok_commerce")
	require.NoError(t, err)

	_, err = manager.ValidateRefreshToken(access)
	require.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	manager := testManager()

	token, err := manager.GenerateAccessToken("cus_1", "jo@example.com", "tok_commerce")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token + "x")
	require.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := testManager().GenerateAccessToken("cus_1", "jo@example.com", "tok_commerce")
	require.NoError(t, err)

	other := &config.Config{}
	other.JWT.Secret = "a-completely-different-secret"
	_, err = NewJWTManager(other).ValidateToken(token)
	require.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer "))
}
