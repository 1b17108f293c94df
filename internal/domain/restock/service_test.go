// internal/domain/restock/service_test.go
package restock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
)

func outOfStockBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"product": {
				"id": "prod_1",
				"handle": "hoodie",
				"variants": [
					{"id": "var_1", "manage_inventory": true, "inventory_quantity": 0}
				]
			}
		}`))
	})
}

type restockHarness struct {
	service *Service
	db      *gorm.DB
	redis   *miniredis.Miniredis
}

// newRestockHarness wires the service against an in-process Redis and a
// throwaway SQLite file. Pass migrate=false to simulate a broken
// persistence layer where every insert fails.
func newRestockHarness(t *testing.T, backend http.Handler, migrate bool) *restockHarness {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "restock.db")), &gorm.Config{})
	require.NoError(t, err)
	if migrate {
		require.NoError(t, db.AutoMigrate(&Subscription{}))
	}

	cfg := &config.Config{}
	cfg.Commerce.BaseURL = srv.URL
	cfg.Commerce.Region = "us"
	cfg.Commerce.Timeout = 5 * time.Second
	cfg.Storefront.RestockCooldown = time.Hour

	return &restockHarness{
		service: NewService(db, rdb, commerce.NewClient(cfg), cfg),
		db:      db,
		redis:   mr,
	}
}

func TestSubscribeCreatesAndArmsCooldown(t *testing.T) {
	h := newRestockHarness(t, outOfStockBackend(), true)
	req := &SubscribeRequest{Email: "jo@example.com", ProductHandle: "hoodie", VariantID: "var_1"}

	sub, err := h.service.Subscribe(context.Background(), req)
	require.NoError(t, err)
	assert.NotZero(t, sub.ID)
	assert.True(t, sub.Pending())
	assert.True(t, h.redis.Exists("restock:cooldown:jo@example.com:var_1"))

	// A repeat submission inside the window is absorbed
	_, err = h.service.Subscribe(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already subscribed recently")
}

func TestSubscribeRejectsInStockVariant(t *testing.T) {
	h := newRestockHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"product": {
				"id": "prod_1",
				"handle": "hoodie",
				"variants": [
					{"id": "var_1", "manage_inventory": true, "inventory_quantity": 5}
				]
			}
		}`))
	}), true)

	_, err := h.service.Subscribe(context.Background(), &SubscribeRequest{
		Email: "jo@example.com", ProductHandle: "hoodie", VariantID: "var_1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in stock")
	assert.False(t, h.redis.Exists("restock:cooldown:jo@example.com:var_1"))
}

func TestSubscribeFailedInsertLeavesCooldownUnarmed(t *testing.T) {
	h := newRestockHarness(t, outOfStockBackend(), false)
	req := &SubscribeRequest{Email: "jo@example.com", ProductHandle: "hoodie", VariantID: "var_1"}

	_, err := h.service.Subscribe(context.Background(), req)
	require.Error(t, err)
	// A signup that never reached the database must not burn the cooldown
	assert.False(t, h.redis.Exists("restock:cooldown:jo@example.com:var_1"))

	// Once persistence recovers the subscriber is not locked out
	require.NoError(t, h.db.AutoMigrate(&Subscription{}))
	sub, err := h.service.Subscribe(context.Background(), req)
	require.NoError(t, err)
	assert.NotZero(t, sub.ID)
	assert.True(t, h.redis.Exists("restock:cooldown:jo@example.com:var_1"))
}

func TestSubscribeVanishedProductKeepsNotFound(t *testing.T) {
	h := newRestockHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "product not found"}`))
	}), true)

	_, err := h.service.Subscribe(context.Background(), &SubscribeRequest{
		Email: "jo@example.com", ProductHandle: "gone", VariantID: "var_1",
	})
	require.Error(t, err)
	// The upstream 404 must survive wrapping so handlers can map it
	assert.True(t, commerce.IsNotFound(err))
}
