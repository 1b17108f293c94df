// internal/commerce/types.go
package commerce

import (
	"time"

	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// Metadata is the extensible key-value bag the commerce API attaches to
// products, variants, and line items. Values are loosely typed; consumers
// go through the coercion helpers below instead of re-checking types ad hoc.
type Metadata map[string]any

// String returns the string value for key, or "" if absent or not a string.
func (m Metadata) String(key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Time parses an RFC 3339 timestamp stored under key. Absent or malformed
// values yield the zero time.
func (m Metadata) Time(key string) time.Time {
	raw := m.String(key)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// MinorAmount reads a minor-unit monetary value stored under key.
func (m Metadata) MinorAmount(key string) (money.Amount, bool) {
	if m == nil {
		return 0, false
	}
	return money.FromMetadataValue(m[key])
}

// Product represents a catalog product as returned by the commerce API
type Product struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Images      []Image   `json:"images,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	Metadata    Metadata  `json:"metadata,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Option represents a named axis of variation (e.g. color, size)
type Option struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Values []string `json:"values,omitempty"`
}

// Image represents a product image
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// OptionValue is a single (option, value) assignment on a variant
type OptionValue struct {
	OptionID string `json:"option_id"`
	Value    string `json:"value"`
}

// Variant represents a concrete purchasable SKU of a product
type Variant struct {
	ID                string        `json:"id"`
	ProductID         string        `json:"product_id"`
	Title             string        `json:"title"`
	SKU               string        `json:"sku"`
	Options           []OptionValue `json:"options,omitempty"`
	ManageInventory   bool          `json:"manage_inventory"`
	AllowBackorder    bool          `json:"allow_backorder"`
	InventoryQuantity *int64        `json:"inventory_quantity"` // nil means zero when inventory is managed
	CalculatedPrice   *money.Amount `json:"calculated_price,omitempty"`
	OriginalPrice     *money.Amount `json:"original_price,omitempty"`
	Metadata          Metadata      `json:"metadata,omitempty"`
}

// LineItem represents a cart or order line: quantity x variant at a
// point-in-time price. Total and OriginalTotal are authoritative and
// already tax/discount adjusted by the backend.
type LineItem struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Thumbnail     string       `json:"thumbnail"`
	Quantity      int          `json:"quantity"`
	VariantID     string       `json:"variant_id"`
	Variant       *Variant     `json:"variant,omitempty"`
	UnitPrice     money.Amount `json:"unit_price"`
	Total         money.Amount `json:"total"`
	OriginalTotal money.Amount `json:"original_total"`
	Metadata      Metadata     `json:"metadata,omitempty"`
}

// Cart represents a shopping cart
type Cart struct {
	ID        string       `json:"id"`
	Email     string       `json:"email,omitempty"`
	Items     []LineItem   `json:"items"`
	Subtotal  money.Amount `json:"subtotal"`
	TaxTotal  money.Amount `json:"tax_total"`
	Total     money.Amount `json:"total"`
	Region    string       `json:"region"`
	Metadata  Metadata     `json:"metadata,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Order represents a completed order
type Order struct {
	ID            string       `json:"id"`
	DisplayID     int          `json:"display_id"`
	Email         string       `json:"email"`
	Status        string       `json:"status"`
	Items         []LineItem   `json:"items"`
	Subtotal      money.Amount `json:"subtotal"`
	ShippingTotal money.Amount `json:"shipping_total"`
	TaxTotal      money.Amount `json:"tax_total"`
	Total         money.Amount `json:"total"`
	CurrencyCode  string       `json:"currency_code"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Customer represents the authenticated storefront customer
type Customer struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoyaltyAccount represents the customer's loyalty balance
type LoyaltyAccount struct {
	CustomerID string `json:"customer_id"`
	Points     int64  `json:"points"`
	Tier       string `json:"tier"`
}

// ShippingOption represents a shipping method offered for a cart
type ShippingOption struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Amount money.Amount `json:"amount"`
}

// BlogPost represents CMS blog content
type BlogPost struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
