package ports

import (
	"context"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for delivery zones.
type ZoneRepository interface {
	// Add persists a new zone.
	Add(ctx context.Context, zone *zone.Zone) error

	// Update persists changes to an existing zone.
	Update(ctx context.Context, zone *zone.Zone) error

	// Get retrieves a zone by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAllActive retrieves every zone available for new orders.
	GetAllActive(ctx context.Context) ([]*zone.Zone, error)
}
