// internal/domain/restock/notifier.go
package restock

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/email"
)

// Notifier polls pending restock subscriptions against live inventory and
// emails subscribers once their variant becomes purchasable again.
type Notifier struct {
	service      *Service
	client       *commerce.Client
	emailService *email.EmailService
	config       *config.Config
	logger       *logrus.Logger
}

// NewNotifier creates a new restock notifier
func NewNotifier(service *Service, client *commerce.Client, emailService *email.EmailService, cfg *config.Config, logger *logrus.Logger) *Notifier {
	return &Notifier{
		service:      service,
		client:       client,
		emailService: emailService,
		config:       cfg,
		logger:       logger,
	}
}

// Run polls on the configured interval until the context is cancelled
func (n *Notifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.config.Storefront.RestockPollInterval)
	defer ticker.Stop()

	n.logger.WithField("interval", n.config.Storefront.RestockPollInterval).
		Info("Restock notifier started")

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("Restock notifier stopped")
			return
		case <-ticker.C:
			n.poll(ctx)
		}
	}
}

// poll runs one notification sweep; failures are logged and retried on the
// next tick rather than propagated.
func (n *Notifier) poll(ctx context.Context) {
	pending, err := n.service.PendingVariants()
	if err != nil {
		n.logger.WithError(err).Error("Failed to load pending restock variants")
		return
	}

	for _, entry := range pending {
		product, err := n.client.GetProductByHandle(ctx, entry.ProductHandle)
		if err != nil {
			if commerce.IsNotFound(err) {
				// Product removed upstream; subscribers stay pending until
				// it reappears or the rows are cleaned up manually
				continue
			}
			n.logger.WithError(err).WithField("handle", entry.ProductHandle).
				Warn("Failed to check restock for product")
			continue
		}

		variant := catalog.FindVariantByID(product.Variants, entry.VariantID)
		if variant == nil || !catalog.VariantPurchasable(variant) {
			continue
		}

		n.notifySubscribers(ctx, product, variant)
	}
}

func (n *Notifier) notifySubscribers(ctx context.Context, product *commerce.Product, variant *commerce.Variant) {
	subs, err := n.service.SubscribersFor(variant.ID)
	if err != nil {
		n.logger.WithError(err).Error("Failed to load restock subscribers")
		return
	}

	for _, sub := range subs {
		data := email.RestockNotificationData{
			ProductTitle:  product.Title,
			ProductHandle: product.Handle,
			VariantTitle:  variant.Title,
		}
		if err := n.emailService.SendRestockEmail(ctx, sub.Email, data); err != nil {
			n.logger.WithError(err).WithField("email", sub.Email).
				Warn("Failed to send restock notification")
			continue
		}

		if err := n.service.MarkNotified(sub.ID); err != nil {
			n.logger.WithError(err).WithField("subscription_id", sub.ID).
				Error("Failed to mark restock subscription notified")
		}
	}
}
