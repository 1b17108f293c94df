// internal/interfaces/http/handlers/blog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
)

// BlogHandler proxies blog content from the commerce backend
type BlogHandler struct {
	client *commerce.Client
	config *config.Config
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(client *commerce.Client, cfg *config.Config) *BlogHandler {
	return &BlogHandler{
		client: client,
		config: cfg,
	}
}

// ListPosts handles GET /blog
func (h *BlogHandler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, count, err := h.client.ListBlogPosts(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve blog posts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog posts retrieved successfully",
		"data": gin.H{
			"posts":  posts,
			"count":  count,
			"limit":  limit,
			"offset": offset,
		},
	})
}

// GetPost handles GET /blog/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.client.GetBlogPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if commerce.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Blog post not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve blog post",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog post retrieved successfully",
		"data":    post,
	})
}
