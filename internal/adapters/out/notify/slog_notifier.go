// Package notify announces delivery events to the point of sale. The current
// transport is the structured log the cashier screen tails; swapping in a
// push channel only needs another ports.Notifier implementation.
package notify

import (
	"context"
	"log/slog"

	"posdelivery/internal/core/domain/model/delivery"
)

// SlogNotifier implements ports.Notifier on the structured logger. It never
// fails the business operation that triggered the notification.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// OrderStatusChanged announces that an order reached a new status.
func (n *SlogNotifier) OrderStatusChanged(ctx context.Context, order *delivery.DeliveryOrder) {
	n.logger.InfoContext(ctx, "order status changed",
		"order", order.Number(),
		"status", order.Status().String(),
	)
}

// OrderCommented announces a new comment on an order.
func (n *SlogNotifier) OrderCommented(ctx context.Context, order *delivery.DeliveryOrder, comment string) {
	n.logger.InfoContext(ctx, "order commented",
		"order", order.Number(),
		"comment", comment,
	)
}
