// internal/pkg/email/types.go
package email

// EmailType identifies the kind of notification being sent
type EmailType string

const (
	EmailTypeRestock      EmailType = "restock"
	EmailTypeOrderReceipt EmailType = "order_receipt"
)

// Email represents an outgoing email
type Email struct {
	To          []string
	Subject     string
	HTMLContent string
	Type        EmailType
}

// OrderReceiptData carries the template data for an order confirmation
type OrderReceiptData struct {
	OrderNumber string
	Total       string
	Currency    string
	StoreName   string
}

// RestockNotificationData carries the template data for a restock email
type RestockNotificationData struct {
	ProductTitle  string
	ProductHandle string
	VariantTitle  string
	StoreName     string
	ProductURL    string
}
