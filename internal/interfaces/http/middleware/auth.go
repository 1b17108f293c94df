// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthMiddleware creates JWT authentication middleware for customer sessions
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		// Extract token from header
		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		// Validate access token
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Store customer information in context
		c.Set("customer_id", claims.CustomerID)
		c.Set("customer_email", claims.Email)
		c.Set("commerce_token", claims.CommerceToken)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// OptionalAuthMiddleware provides optional authentication. Anonymous
// requests proceed without customer context.
func OptionalAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// No auth header, continue without authentication
			c.Next()
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			// Invalid header format, continue without authentication
			c.Next()
			return
		}

		// Try to validate token
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			// Invalid token, continue without authentication
			c.Next()
			return
		}

		// Store customer information in context if token is valid
		c.Set("customer_id", claims.CustomerID)
		c.Set("customer_email", claims.Email)
		c.Set("commerce_token", claims.CommerceToken)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// GetCustomerIDFromContext extracts the customer ID from gin context
func GetCustomerIDFromContext(c *gin.Context) (string, bool) {
	customerID, exists := c.Get("customer_id")
	if !exists {
		return "", false
	}
	return customerID.(string), true
}

// GetCommerceTokenFromContext extracts the upstream commerce API token
// carried inside the session claims
func GetCommerceTokenFromContext(c *gin.Context) (string, bool) {
	token, exists := c.Get("commerce_token")
	if !exists {
		return "", false
	}
	return token.(string), true
}
