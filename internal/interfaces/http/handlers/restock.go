// internal/interfaces/http/handlers/restock.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/restock"
	"gorm.io/gorm"
)

// RestockHandler handles restock notification signups
type RestockHandler struct {
	restockService *restock.Service
	config         *config.Config
}

// NewRestockHandler creates a new restock handler
func NewRestockHandler(db *gorm.DB, redisClient *redis.Client, client *commerce.Client, cfg *config.Config) *RestockHandler {
	return &RestockHandler{
		restockService: restock.NewService(db, redisClient, client, cfg),
		config:         cfg,
	}
}

// Subscribe handles POST /restock-subscriptions
func (h *RestockHandler) Subscribe(c *gin.Context) {
	var req restock.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	subscription, err := h.restockService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product or variant not found",
			})
			return
		}
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Restock subscription created successfully",
		"data":    subscription,
	})
}
