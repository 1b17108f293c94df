// internal/commerce/client_test.go
package commerce

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Commerce.BaseURL = srv.URL
	cfg.Commerce.PublishableKey = "pk_test_123"
	cfg.Commerce.Region = "us"
	cfg.Commerce.Timeout = 5 * time.Second

	return NewClient(cfg)
}

func TestListProducts(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/store/products", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("region"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "hoodie", r.URL.Query().Get("q"))
		assert.Equal(t, "pk_test_123", r.Header.Get("X-Publishable-Api-Key"))
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 1,
			"products": [{
				"id": "prod_1",
				"handle": "hoodie",
				"title": "Hoodie",
				"variants": [{
					"id": "var_1",
					"manage_inventory": true,
					"inventory_quantity": 3,
					"calculated_price": 49.95
				}]
			}]
		}`))
	}))

	products, count, err := client.ListProducts(context.Background(), ListProductsParams{
		Limit:  25,
		Search: "hoodie",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, products, 1)

	// Wire prices are major units; the decoded value must be minor units
	variant := products[0].Variants[0]
	require.NotNil(t, variant.CalculatedPrice)
	assert.Equal(t, money.Amount(4995), *variant.CalculatedPrice)
	require.NotNil(t, variant.InventoryQuantity)
	assert.Equal(t, int64(3), *variant.InventoryQuantity)
}

func TestGetProductByHandleNotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "product not found"}`))
	}))

	product, err := client.GetProductByHandle(context.Background(), "gone")
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "product not found")
}

func TestIsNotFoundDistinguishesTransportFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	}))

	_, err := client.GetProductByHandle(context.Background(), "hoodie")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestCreateCartSendsRegion(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/store/carts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Write([]byte(`{"cart": {"id": "cart_1", "region": "us", "items": []}}`))
	}))

	cart, err := client.CreateCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cart_1", cart.ID)
	assert.Empty(t, cart.Items)
}

func TestAddLineItem(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/store/carts/cart_1/line-items", r.URL.Path)

		w.Write([]byte(`{
			"cart": {
				"id": "cart_1",
				"items": [{
					"id": "item_1",
					"variant_id": "var_1",
					"quantity": 2,
					"unit_price": 8.00,
					"total": 16.00,
					"original_total": 16.00
				}],
				"subtotal": 16.00,
				"total": 16.00
			}
		}`))
	}))

	cart, err := client.AddLineItem(context.Background(), "cart_1", &AddLineItemRequest{
		VariantID: "var_1",
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, money.Amount(1600), cart.Items[0].Total)
	assert.Equal(t, money.Amount(800), cart.Items[0].UnitPrice)
}

func TestGetCustomerSendsBearerToken(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/store/customers/me", r.URL.Path)
		assert.Equal(t, "Bearer tok_123", r.Header.Get("Authorization"))

		w.Write([]byte(`{"customer": {"id": "cus_1", "email": "jo@example.com"}}`))
	}))

	customer, err := client.GetCustomer(context.Background(), "tok_123")
	require.NoError(t, err)
	assert.Equal(t, "cus_1", customer.ID)
	assert.Equal(t, "jo@example.com", customer.Email)
}

func TestMetadataHelpers(t *testing.T) {
	m := Metadata{
		"published_at":     "2024-03-01T10:00:00Z",
		"compare_at_price": float64(1000),
		"badge":            "new",
		"weight":           12,
	}

	assert.Equal(t, "new", m.String("badge"))
	assert.Equal(t, "", m.String("weight"))
	assert.Equal(t, "", m.String("missing"))

	published := m.Time("published_at")
	assert.Equal(t, 2024, published.Year())
	assert.True(t, m.Time("badge").IsZero())

	amount, ok := m.MinorAmount("compare_at_price")
	require.True(t, ok)
	assert.Equal(t, money.Amount(1000), amount)

	_, ok = m.MinorAmount("badge")
	assert.False(t, ok)
}
