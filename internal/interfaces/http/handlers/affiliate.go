// internal/interfaces/http/handlers/affiliate.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/affiliate"
	"gorm.io/gorm"
)

const affiliateVisitorCookie = "aff_visitor"

// AffiliateHandler handles affiliate referral tracking
type AffiliateHandler struct {
	affiliateService *affiliate.Service
	config           *config.Config
}

// NewAffiliateHandler creates a new affiliate handler
func NewAffiliateHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateService: affiliate.NewService(db, redisClient, cfg),
		config:           cfg,
	}
}

// TrackClick handles GET /affiliate/track
//
// Records the referral click, sets the attribution cookie, and remembers
// the visitor so repeat clicks within the cookie window are not recorded
// twice.
func (h *AffiliateHandler) TrackClick(c *gin.Context) {
	code := c.Query(affiliate.RefParam)
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing ref parameter",
		})
		return
	}

	visitorID, _ := c.Cookie(affiliateVisitorCookie)
	landingPath := c.Query("path")
	referer := c.GetHeader("Referer")

	result, err := h.affiliateService.Track(c.Request.Context(), code, visitorID, landingPath, referer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record referral",
		})
		return
	}

	maxAge := int(result.CookieTTL.Seconds())
	secure := h.config.IsProduction()
	c.SetCookie(h.config.Storefront.AffiliateCookieName, result.Code, maxAge, "/", "", secure, true)
	c.SetCookie(affiliateVisitorCookie, result.VisitorID, maxAge, "/", "", secure, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Referral recorded successfully",
		"data":    result,
	})
}

// ShareLink handles GET /affiliate/share-link
//
// Rewrites an outbound URL to carry the visitor's referral code so shared
// links keep attribution. Without a ref cookie the URL comes back unchanged.
func (h *AffiliateHandler) ShareLink(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing url parameter",
		})
		return
	}

	code, _ := c.Cookie(h.config.Storefront.AffiliateCookieName)

	c.JSON(http.StatusOK, gin.H{
		"message": "Share link built successfully",
		"data": gin.H{
			"url": affiliate.AppendRef(rawURL, code),
		},
	})
}
