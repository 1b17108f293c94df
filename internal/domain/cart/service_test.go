// internal/domain/cart/service_test.go
package cart

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
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/pkg/money"
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
	return NewService(commerce.NewClient(cfg), pricing.NewCalculator(logger), cfg)
}

func TestGetCartDecoratesItemsWithDisplayPricing(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/store/carts/cart_1", r.URL.Path)

		w.Write([]byte(`{
			"cart": {
				"id": "cart_1",
				"items": [
					{
						"id": "item_promo",
						"title": "Hoodie",
						"quantity": 1,
						"unit_price": 10.00,
						"total": 10.00,
						"original_total": 15.00
					},
					{
						"id": "item_plain",
						"title": "Socks",
						"quantity": 2,
						"unit_price": 4.00,
						"total": 8.00,
						"original_total": 8.00
					}
				],
				"subtotal": 18.00,
				"tax_total": 1.80,
				"total": 19.80
			}
		}`))
	}))

	view, err := service.GetCart(context.Background(), "cart_1")
	require.NoError(t, err)

	assert.Equal(t, "cart_1", view.ID)
	assert.Equal(t, money.Amount(1980), view.Total)
	require.Len(t, view.Items, 2)

	promo := view.Items[0]
	require.NotNil(t, promo.Display.OriginalTotal)
	assert.Equal(t, money.Amount(1500), *promo.Display.OriginalTotal)
	assert.Equal(t, 33, promo.Display.DiscountPercent)

	plain := view.Items[1]
	assert.Nil(t, plain.Display.OriginalTotal)
	assert.Zero(t, plain.Display.DiscountPercent)
}

func TestGetCartCreatesCartWhenIDEmpty(t *testing.T) {
	var createdCalled bool
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/store/carts", r.URL.Path)
		createdCalled = true

		w.Write([]byte(`{"cart": {"id": "cart_new", "items": []}}`))
	}))

	view, err := service.GetCart(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, createdCalled)
	assert.Equal(t, "cart_new", view.ID)
}

func TestUpdateItemZeroQuantityRemovesLine(t *testing.T) {
	var gotMethod, gotPath string
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		w.Write([]byte(`{"cart": {"id": "cart_1", "items": []}}`))
	}))

	view, err := service.UpdateItem(context.Background(), "cart_1", "item_1", &UpdateItemRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/store/carts/cart_1/line-items/item_1", gotPath)
	assert.Empty(t, view.Items)
}

func TestItemCountMissingCartIsZero(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "cart not found"}`))
	}))

	count, err := service.ItemCount(context.Background(), "cart_gone")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestItemCountSumsQuantities(t *testing.T) {
	service := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"cart": {
				"id": "cart_1",
				"items": [
					{"id": "a", "quantity": 2},
					{"id": "b", "quantity": 3}
				]
			}
		}`))
	}))

	count, err := service.ItemCount(context.Background(), "cart_1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
