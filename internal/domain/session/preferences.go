// internal/domain/session/preferences.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/your-org/storefront-backend/internal/config"
)

// Preferences is the per-session UI state the storefront keeps between
// visits: theme choice and preview/draft mode. It is an explicit state
// container with a hydrate/save/clear lifecycle rather than ambient
// global state.
type Preferences struct {
	SessionID   string    `json:"session_id"`
	Theme       string    `json:"theme"`
	PreviewMode bool      `json:"preview_mode"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Store persists session preferences in Redis
type Store struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewStore creates a new preferences store
func NewStore(redisClient *redis.Client, cfg *config.Config) *Store {
	return &Store{
		redisClient: redisClient,
		config:      cfg,
	}
}

func prefsKey(sessionID string) string {
	return fmt.Sprintf("session:prefs:%s", sessionID)
}

// Hydrate loads the preferences for a session. An unknown or empty session
// ID yields fresh defaults with a newly minted session ID.
func (s *Store) Hydrate(ctx context.Context, sessionID string) (*Preferences, error) {
	if sessionID == "" {
		return defaultPreferences(), nil
	}

	data, err := s.redisClient.Get(ctx, prefsKey(sessionID)).Result()
	if err == redis.Nil {
		prefs := defaultPreferences()
		prefs.SessionID = sessionID
		return prefs, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load session preferences: %w", err)
	}

	var prefs Preferences
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode session preferences: %w", err)
	}
	return &prefs, nil
}

// Save persists the preferences with the configured TTL
func (s *Store) Save(ctx context.Context, prefs *Preferences) error {
	if prefs.SessionID == "" {
		prefs.SessionID = uuid.New().String()
	}
	prefs.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode session preferences: %w", err)
	}

	return s.redisClient.Set(ctx, prefsKey(prefs.SessionID), data, s.config.Storefront.PreferenceTTL).Err()
}

// Clear tears down the session state, used on logout
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.redisClient.Del(ctx, prefsKey(sessionID)).Err()
}

func defaultPreferences() *Preferences {
	return &Preferences{
		SessionID: uuid.New().String(),
		Theme:     "system",
	}
}
