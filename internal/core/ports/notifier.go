package ports

import (
	"context"

	"posdelivery/internal/core/domain/model/delivery"
)

// Notifier announces delivery lifecycle events to interested parties, such
// as the cashier screen. Implementations must not fail the business
// operation: notification errors are logged, never returned to handlers.
type Notifier interface {
	// OrderStatusChanged announces that an order reached a new status.
	OrderStatusChanged(ctx context.Context, order *delivery.DeliveryOrder)

	// OrderCommented announces a new comment on an order.
	OrderCommented(ctx context.Context, order *delivery.DeliveryOrder, comment string)
}
