// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthHandler exchanges commerce API bearer tokens for storefront session
// tokens. The storefront never sees credentials; login itself happens
// against the commerce backend.
type AuthHandler struct {
	client     *commerce.Client
	jwtManager *auth.JWTManager
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(client *commerce.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		client:     client,
		jwtManager: auth.NewJWTManager(cfg),
		config:     cfg,
	}
}

// CreateSessionRequest carries the upstream commerce token to wrap
type CreateSessionRequest struct {
	CommerceToken string `json:"commerce_token" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateSession handles POST /auth/session
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Verify the token against the commerce API before wrapping it
	customer, err := h.client.GetCustomer(c.Request.Context(), req.CommerceToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid commerce token",
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(customer.ID, customer.Email, req.CommerceToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	refreshToken, err := h.jwtManager.GenerateRefreshToken(customer.ID, customer.Email, req.CommerceToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session created successfully",
		"data": gin.H{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"customer":      customer,
		},
	})
}

// RefreshSession handles POST /auth/refresh
func (h *AuthHandler) RefreshSession(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	claims, err := h.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(claims.CustomerID, claims.Email, claims.CommerceToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to refresh session",
		})
		return
	}

	refreshToken, err := h.jwtManager.GenerateRefreshToken(claims.CustomerID, claims.Email, claims.CommerceToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to refresh session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session refreshed successfully",
		"data": gin.H{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
	})
}
