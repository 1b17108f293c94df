// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

const cartCookieName = "cart_id"

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(client *commerce.Client, calculator *pricing.Calculator, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(client, calculator, cfg),
		config:      cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cartID := h.cartIDFromRequest(c)

	view, err := h.cartService.GetCart(c.Request.Context(), cartID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	h.rememberCartID(c, view.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    view,
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID := h.cartIDFromRequest(c)

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), cartID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.rememberCartID(c, view.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    view,
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID := h.cartIDFromRequest(c)
	if cartID == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart not found",
		})
		return
	}

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.cartService.UpdateItem(c.Request.Context(), cartID, c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    view,
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID := h.cartIDFromRequest(c)
	if cartID == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart not found",
		})
		return
	}

	view, err := h.cartService.RemoveItem(c.Request.Context(), cartID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    view,
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	cartID := h.cartIDFromRequest(c)

	count, err := h.cartService.ItemCount(c.Request.Context(), cartID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to get cart count",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}

// cartIDFromRequest reads the cart ID from cookie, falling back to the
// X-Cart-ID header for clients that do not carry cookies
func (h *CartHandler) cartIDFromRequest(c *gin.Context) string {
	if cartID, err := c.Cookie(cartCookieName); err == nil && cartID != "" {
		return cartID
	}
	return c.GetHeader("X-Cart-ID")
}

// rememberCartID sets the cart cookie so subsequent requests reuse the cart
func (h *CartHandler) rememberCartID(c *gin.Context, cartID string) {
	if cartID == "" {
		return
	}
	c.SetCookie(cartCookieName, cartID, 86400*30, "/", "", h.config.IsProduction(), true)
}
