// Package notify tells the seller about new orders. Delivery is best
// effort; a failed email never fails a checkout.
package notify

import (
	"context"
	"fmt"
	"strings"

	"grosirku-be/internal/config"
	"grosirku-be/internal/logger"
	"grosirku-be/internal/order"
	"grosirku-be/internal/receipt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailNotifier struct {
	cfg    *config.Config
	dialer sender
}

func NewEmailNotifier(cfg *config.Config) *EmailNotifier {
	n := &EmailNotifier{cfg: cfg}
	if cfg.MailConfigured() {
		n.dialer = gomail.NewDialer(cfg.MailServer, cfg.MailPort,
			cfg.MailUsername, cfg.MailPassword)
	}
	return n
}

// OrderPlaced emails the seller a plain-text summary of the new
// order. When mail settings are absent it does nothing.
func (n *EmailNotifier) OrderPlaced(ctx context.Context, o *order.Order) {
	if n.dialer == nil {
		return
	}
	log := logger.FromCtx(ctx)

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.MailUsername)
	m.SetHeader("To", n.cfg.SellerEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Pickup Order #%d", o.ID))
	m.SetBody("text/plain", orderBody(o))

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Error("failed to send order notification",
			zap.Int64("order_id", o.ID),
			zap.Error(err),
		)
		return
	}

	log.Info("order notification sent", zap.Int64("order_id", o.ID))
}

func orderBody(o *order.Order) string {
	email := "N/A"
	if o.CustomerEmail != nil && *o.CustomerEmail != "" {
		email = *o.CustomerEmail
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New order placed (ID: %d)\n\n", o.ID)
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", email)
	fmt.Fprintf(&b, "Phone: %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "Pickup time: %s\n\n", o.PickupTime.Format("2006-01-02 03:04 PM"))
	b.WriteString("Items:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %s x %s @ $%.2f\n",
			item.ProductName,
			receipt.FormatQuantity(item.Quantity, item.UnitType),
			item.UnitPrice,
		)
	}
	fmt.Fprintf(&b, "\nTotal amount: $%.2f\n", o.TotalAmount)
	return b.String()
}
