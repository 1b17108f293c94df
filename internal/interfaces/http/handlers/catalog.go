// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles product listing and detail endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(client *commerce.Client, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalog.NewService(client, cfg),
		config:         cfg,
	}
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var req catalog.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	listing, err := h.catalogService.ListProducts(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    listing,
	})
}

// GetProduct handles GET /products/:handle
//
// The variant can be pre-seeded with the v_id query parameter; otherwise it
// is resolved from option selection parameters of the form opt[option_id].
// A selection that matches no variant is a normal outcome: the response
// carries a null variant and purchasable=false with status 200.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	handle := c.Param("handle")
	variantID := c.Query("v_id")

	selection := catalog.OptionSelection{}
	for optionID, value := range c.QueryMap("opt") {
		selection[optionID] = value
	}

	detail, err := h.catalogService.GetProduct(c.Request.Context(), handle, variantID, selection)
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    detail,
	})
}
