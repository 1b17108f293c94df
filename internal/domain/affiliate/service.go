// internal/domain/affiliate/service.go
package affiliate

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
)

// RefParam is the query parameter carrying the affiliate code
const RefParam = "ref"

// Service handles affiliate click tracking and ref-code propagation
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new affiliate service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// TrackResult carries what the handler needs to set the affiliate cookie
type TrackResult struct {
	Code      string        `json:"code"`
	VisitorID string        `json:"visitor_id"`
	Recorded  bool          `json:"recorded"`
	CookieTTL time.Duration `json:"-"`
}

// Track records an affiliate click. An empty visitor ID mints a new one so
// the cookie can be set on first contact. Repeat clicks by the same visitor
// for the same code within the cookie window are deduplicated via Redis and
// not persisted again.
func (s *Service) Track(ctx context.Context, code, visitorID, landingPath, referer string) (*TrackResult, error) {
	if code == "" {
		return nil, fmt.Errorf("affiliate code required")
	}
	if visitorID == "" {
		visitorID = uuid.New().String()
	}

	result := &TrackResult{
		Code:      code,
		VisitorID: visitorID,
		CookieTTL: s.config.Storefront.AffiliateCookieMaxAge,
	}

	dedupeKey := fmt.Sprintf("affiliate:seen:%s:%s", visitorID, code)
	set, err := s.redisClient.SetNX(ctx, dedupeKey, 1, s.config.Storefront.AffiliateCookieMaxAge).Result()
	if err == nil && !set {
		// Already counted this visitor for this code
		return result, nil
	}

	click := Click{
		Code:        code,
		VisitorID:   visitorID,
		LandingPath: landingPath,
		Referer:     referer,
	}
	if err := s.db.Create(&click).Error; err != nil {
		return nil, fmt.Errorf("failed to record affiliate click: %w", err)
	}

	result.Recorded = true
	return result, nil
}

// AppendRef rewrites a URL to carry the affiliate code, preserving existing
// query parameters. An already-present ref is overwritten. Unparseable URLs
// are returned unchanged.
func AppendRef(rawURL, code string) string {
	if code == "" {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	query.Set(RefParam, code)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
