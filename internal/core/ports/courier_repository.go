// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the sequence generator,
// and the notifier. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"posdelivery/internal/core/domain/model/courier"
	"posdelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByEmail retrieves a courier by login email.
	// Returns an ObjectNotFoundError when no courier has that email.
	GetByEmail(ctx context.Context, email string) (*courier.Courier, error)
}
