// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/pkg/email"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Commerce.BaseURL = srv.URL
	cfg.Commerce.Region = "us"
	cfg.Commerce.Timeout = 5 * time.Second

	logger, _ := test.NewNullLogger()
	client := commerce.NewClient(cfg)
	cartService := cart.NewService(client, pricing.NewCalculator(logger), cfg)

	return NewService(client, cartService, email.NewEmailService(cfg), cfg, logger)
}

func TestLoadPageAggregatesAllFetches(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/store/carts/cart_1":
			w.Write([]byte(`{"cart": {"id": "cart_1", "items": [], "total": 20.00}}`))
		case "/store/shipping-options/cart_1":
			w.Write([]byte(`{"shipping_options": [{"id": "so_1", "name": "Standard", "amount": 4.99}]}`))
		case "/store/customers/me":
			w.Write([]byte(`{"customer": {"id": "cus_1", "email": "jo@example.com"}}`))
		case "/store/loyalty/account":
			w.Write([]byte(`{"account": {"customer_id": "cus_1", "points": 120, "tier": "silver"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	page, err := service.LoadPage(context.Background(), "cart_1", "tok_123")
	require.NoError(t, err)

	require.NotNil(t, page.Cart)
	assert.Equal(t, "cart_1", page.Cart.ID)
	require.Len(t, page.ShippingOptions, 1)
	assert.Equal(t, "Standard", page.ShippingOptions[0].Name)
	require.NotNil(t, page.Customer)
	assert.Equal(t, "cus_1", page.Customer.ID)
	require.NotNil(t, page.Loyalty)
	assert.Equal(t, int64(120), page.Loyalty.Points)
}

func TestLoadPageOptionalFetchesDegrade(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/store/carts/cart_1":
			w.Write([]byte(`{"cart": {"id": "cart_1", "items": []}}`))
		default:
			// Shipping, customer, and loyalty all fail
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "upstream down"}`))
		}
	}))

	page, err := service.LoadPage(context.Background(), "cart_1", "tok_123")
	require.NoError(t, err)

	require.NotNil(t, page.Cart)
	assert.NotNil(t, page.ShippingOptions)
	assert.Empty(t, page.ShippingOptions)
	assert.Nil(t, page.Customer)
	assert.Nil(t, page.Loyalty)
}

func TestLoadPageGuestSkipsCustomerFetches(t *testing.T) {
	var customerCalled bool
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/store/carts/cart_1":
			w.Write([]byte(`{"cart": {"id": "cart_1", "items": []}}`))
		case "/store/shipping-options/cart_1":
			w.Write([]byte(`{"shipping_options": []}`))
		default:
			customerCalled = true
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))

	page, err := service.LoadPage(context.Background(), "cart_1", "")
	require.NoError(t, err)

	assert.False(t, customerCalled)
	assert.Nil(t, page.Customer)
	assert.Nil(t, page.Loyalty)
}

func TestLoadPageCartFailureIsFatal(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "cart not found"}`))
	}))

	page, err := service.LoadPage(context.Background(), "cart_1", "")
	require.Error(t, err)
	assert.Nil(t, page)
}

func TestLoadPageRequiresCartID(t *testing.T) {
	service := newTestService(t, http.NotFoundHandler())

	_, err := service.LoadPage(context.Background(), "", "")
	require.Error(t, err)
}

func TestCompletePlacesOrder(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/store/carts/cart_1/complete", r.URL.Path)
		assert.Equal(t, "Bearer tok_123", r.Header.Get("Authorization"))

		w.Write([]byte(`{"order": {"id": "order_1", "display_id": 42, "status": "pending", "total": 19.80}}`))
	}))

	order, err := service.Complete(context.Background(), "cart_1", "tok_123")
	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, 42, order.DisplayID)
}

func TestCompleteRejectionLeavesCartOpen(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "payment declined"}`))
	}))

	order, err := service.Complete(context.Background(), "cart_1", "")
	require.Error(t, err)
	assert.Nil(t, order)
	assert.False(t, commerce.IsNotFound(err))
}

func TestCompleteRequiresCartID(t *testing.T) {
	service := newTestService(t, http.NotFoundHandler())

	_, err := service.Complete(context.Background(), "", "")
	require.Error(t, err)
}
