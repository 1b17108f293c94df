// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/session"
)

const sessionCookieName = "session_id"

// SessionHandler handles session preference endpoints
type SessionHandler struct {
	store  *session.Store
	config *config.Config
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(redisClient *redis.Client, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		store:  session.NewStore(redisClient, cfg),
		config: cfg,
	}
}

// UpdatePreferencesRequest carries the mutable preference fields
type UpdatePreferencesRequest struct {
	Theme       string `json:"theme" binding:"omitempty,oneof=light dark system"`
	PreviewMode *bool  `json:"preview_mode"`
}

// GetPreferences handles GET /session/preferences
func (h *SessionHandler) GetPreferences(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	prefs, err := h.store.Hydrate(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load preferences",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences retrieved successfully",
		"data":    prefs,
	})
}

// UpdatePreferences handles PUT /session/preferences
func (h *SessionHandler) UpdatePreferences(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	prefs, err := h.store.Hydrate(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load preferences",
		})
		return
	}

	if req.Theme != "" {
		prefs.Theme = req.Theme
	}
	if req.PreviewMode != nil {
		prefs.PreviewMode = *req.PreviewMode
	}
	prefs.UpdatedAt = time.Now().UTC()

	if err := h.store.Save(c.Request.Context(), prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save preferences",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences updated successfully",
		"data":    prefs,
	})
}

// ClearPreferences handles DELETE /session/preferences, called on logout
func (h *SessionHandler) ClearPreferences(c *gin.Context) {
	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusOK, gin.H{
			"message": "Preferences cleared successfully",
		})
		return
	}

	if err := h.store.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear preferences",
		})
		return
	}

	c.SetCookie(sessionCookieName, "", -1, "/", "", h.config.IsProduction(), true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences cleared successfully",
	})
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (h *SessionHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(sessionCookieName, sessionID, 86400, "/", "", h.config.IsProduction(), true)
	}
	return sessionID
}
