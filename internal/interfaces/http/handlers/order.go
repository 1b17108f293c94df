// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// OrderHandler handles customer order history endpoints
type OrderHandler struct {
	client     *commerce.Client
	pdfService *pdf.Service
	config     *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(client *commerce.Client, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		client:     client,
		pdfService: pdf.NewService(cfg),
		config:     cfg,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	token, ok := middleware.GetCommerceTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, count, err := h.client.ListOrders(c.Request.Context(), token, limit, offset)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  count,
			"limit":  limit,
			"offset": offset,
		},
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	token, ok := middleware.GetCommerceTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	order, err := h.client.GetOrder(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// DownloadReceipt handles GET /orders/:id/receipt
func (h *OrderHandler) DownloadReceipt(c *gin.Context) {
	token, ok := middleware.GetCommerceTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	order, err := h.client.GetOrder(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	receipt, err := h.pdfService.GenerateReceipt(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	filename := fmt.Sprintf("receipt-%d.pdf", order.DisplayID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", receipt.Bytes())
}
