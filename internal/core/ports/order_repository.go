package ports

import (
	"context"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
)

// DeliveryOrderRepository defines the persistence contract for delivery
// order aggregates. Implementations persist the aggregate together with its
// stage time and history children.
type DeliveryOrderRepository interface {
	// Add persists a new delivery order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.DeliveryOrder) error

	// Update persists changes to an existing delivery order aggregate,
	// including newly appended stage time and history entries.
	Update(ctx context.Context, aggregate *delivery.DeliveryOrder) error

	// Get retrieves a delivery order aggregate by its unique identifier,
	// with its complete stage time and history logs.
	Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryOrder, error)
}
