// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/email"
)

// CheckoutHandler handles the checkout page aggregation endpoint
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(client *commerce.Client, calculator *pricing.Calculator, cfg *config.Config, logger *logrus.Logger) *CheckoutHandler {
	cartService := cart.NewService(client, calculator, cfg)
	emailService := email.NewEmailService(cfg)
	return &CheckoutHandler{
		checkoutService: checkout.NewService(client, cartService, emailService, cfg, logger),
		config:          cfg,
	}
}

// GetCheckoutPage handles GET /checkout
//
// Cart, shipping options, customer profile, and loyalty balance are fetched
// concurrently. Only the cart is required; the rest degrade to null.
func (h *CheckoutHandler) GetCheckoutPage(c *gin.Context) {
	cartID := h.cartIDFromRequest(c)
	if cartID == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart not found",
		})
		return
	}

	customerToken, _ := middleware.GetCommerceTokenFromContext(c)

	page, err := h.checkoutService.LoadPage(c.Request.Context(), cartID, customerToken)
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load checkout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout loaded successfully",
		"data":    page,
	})
}

// CompleteCheckout handles POST /checkout/complete
//
// On success the cart cookie is cleared so the next visit starts a fresh
// cart. A backend rejection (failed payment, stock gone) leaves the cart
// open and is relayed as-is.
func (h *CheckoutHandler) CompleteCheckout(c *gin.Context) {
	cartID := h.cartIDFromRequest(c)
	if cartID == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart not found",
		})
		return
	}

	customerToken, _ := middleware.GetCommerceTokenFromContext(c)

	order, err := h.checkoutService.Complete(c.Request.Context(), cartID, customerToken)
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart not found",
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Checkout could not be completed",
		})
		return
	}

	c.SetCookie(cartCookieName, "", -1, "/", "", h.config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data":    order,
	})
}

func (h *CheckoutHandler) cartIDFromRequest(c *gin.Context) string {
	if cartID, err := c.Cookie(cartCookieName); err == nil && cartID != "" {
		return cartID
	}
	return c.GetHeader("X-Cart-ID")
}
