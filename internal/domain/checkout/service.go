// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/pkg/email"
)

// Service assembles the checkout page payload
type Service struct {
	client       *commerce.Client
	cartService  *cart.Service
	emailService *email.EmailService
	config       *config.Config
	logger       *logrus.Logger
}

// NewService creates a new checkout service
func NewService(client *commerce.Client, cartService *cart.Service, emailService *email.EmailService, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		client:       client,
		cartService:  cartService,
		emailService: emailService,
		config:       cfg,
		logger:       logger,
	}
}

// PageData represents everything the checkout page needs in one payload.
// Customer and Loyalty are nil when the fetch fails or the visitor is a
// guest; only the cart itself is required.
type PageData struct {
	Cart            *cart.CartView            `json:"cart"`
	Customer        *commerce.Customer        `json:"customer,omitempty"`
	ShippingOptions []commerce.ShippingOption `json:"shipping_options"`
	Loyalty         *commerce.LoyaltyAccount  `json:"loyalty,omitempty"`
}

// LoadPage fetches the cart, customer, shipping options, and loyalty balance
// concurrently. The fetches are independent: a failed optional fetch degrades
// to its zero value instead of failing the page, and only a missing cart is
// fatal.
func (s *Service) LoadPage(ctx context.Context, cartID, customerToken string) (*PageData, error) {
	if cartID == "" {
		return nil, fmt.Errorf("cart ID required for checkout")
	}

	data := &PageData{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		view, err := s.cartService.GetCart(gctx, cartID)
		if err != nil {
			return fmt.Errorf("failed to load checkout cart: %w", err)
		}
		data.Cart = view
		return nil
	})

	g.Go(func() error {
		options, err := s.client.ListShippingOptions(gctx, cartID)
		if err != nil {
			s.logger.WithError(err).Warn("Shipping options unavailable for checkout")
			data.ShippingOptions = []commerce.ShippingOption{}
			return nil
		}
		data.ShippingOptions = options
		return nil
	})

	if customerToken != "" {
		g.Go(func() error {
			customer, err := s.client.GetCustomer(gctx, customerToken)
			if err != nil {
				s.logger.WithError(err).Warn("Customer lookup failed, continuing as guest")
				return nil
			}
			data.Customer = customer
			return nil
		})

		g.Go(func() error {
			loyalty, err := s.client.GetLoyaltyAccount(gctx, customerToken)
			if err != nil {
				// Loyalty is strictly optional; missing data renders nothing
				return nil
			}
			data.Loyalty = loyalty
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if data.ShippingOptions == nil {
		data.ShippingOptions = []commerce.ShippingOption{}
	}

	return data, nil
}

// Complete finishes checkout for the cart. Payment capture, final totals,
// and inventory reservation all happen upstream; this layer only relays
// the resulting order.
func (s *Service) Complete(ctx context.Context, cartID, customerToken string) (*commerce.Order, error) {
	if cartID == "" {
		return nil, fmt.Errorf("cart ID required for checkout")
	}

	order, err := s.client.CompleteCart(ctx, cartID, customerToken)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":   order.ID,
		"display_id": order.DisplayID,
	}).Info("Checkout completed")

	// The confirmation email is best effort; the order is already placed
	if order.Email != "" {
		data := email.OrderReceiptData{
			OrderNumber: fmt.Sprintf("#%d", order.DisplayID),
			Total:       order.Total.Format(),
			Currency:    strings.ToUpper(order.CurrencyCode),
		}
		if err := s.emailService.SendOrderReceiptEmail(ctx, order.Email, data); err != nil {
			s.logger.WithError(err).WithField("order_id", order.ID).
				Warn("Failed to send order confirmation email")
		}
	}

	return order, nil
}
