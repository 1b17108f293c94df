// internal/domain/wishlist/service_test.go
package wishlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
)

func newValidationService(t *testing.T, backend http.Handler) *Service {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Commerce.BaseURL = srv.URL
	cfg.Commerce.Region = "us"
	cfg.Commerce.Timeout = 5 * time.Second

	// Product validation runs before any database access, so the
	// persistence layer is not needed here.
	return NewService(nil, commerce.NewClient(cfg), cfg)
}

func TestAddVanishedProductKeepsNotFound(t *testing.T) {
	service := newValidationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "product not found"}`))
	}))

	_, err := service.Add(context.Background(), "cus_1", &AddRequest{ProductHandle: "gone"})
	require.Error(t, err)
	// The upstream 404 must survive wrapping so handlers can map it
	assert.True(t, commerce.IsNotFound(err))
}

func TestAddUpstreamFailureIsNotNotFound(t *testing.T) {
	service := newValidationService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := service.Add(context.Background(), "cus_1", &AddRequest{ProductHandle: "hoodie"})
	require.Error(t, err)
	assert.False(t, commerce.IsNotFound(err))
}
