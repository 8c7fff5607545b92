// Package zone provides the Zone aggregate. Zones partition the delivery
// area and carry the default fee and time estimate applied to orders created
// inside them.
package zone

import (
	"errors"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a delivery area with a default fee and estimated delivery time.
type Zone struct {
	// id uniquely identifies the zone
	id kernel.UUID
	// name is the display name, e.g. "North District"
	name string
	// code is a short unique identifier, e.g. "NORTH"
	code string
	// cost is the default delivery fee for orders in this zone
	cost decimal.Decimal
	// estimatedMinutes is the default delivery time estimate
	estimatedMinutes int
	// active controls whether the zone can be assigned to new orders
	active bool
	// description is free text for staff
	description string
	// guard ensures the zone was properly constructed
	guard guard.ConstructorGuard
}

// NewZone creates a new active zone.
func NewZone(id kernel.UUID, name string, code string, cost decimal.Decimal, estimatedMinutes int) (*Zone, error) {
	z := &Zone{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCode(code),
		z.setCost(cost),
		z.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a zone from persistent storage.
func RestoreZone(
	id kernel.UUID,
	name string,
	code string,
	cost decimal.Decimal,
	estimatedMinutes int,
	active bool,
	description string,
) (*Zone, error) {
	z := &Zone{
		active:      active,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCode(code),
		z.setCost(cost),
		z.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// Validate checks if the zone was properly constructed.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// IsEqual compares two zones by identity.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID { return z.id }

// Name returns the display name.
func (z *Zone) Name() string { return z.name }

// Code returns the short unique identifier.
func (z *Zone) Code() string { return z.code }

// Cost returns the default delivery fee.
func (z *Zone) Cost() decimal.Decimal { return z.cost }

// EstimatedMinutes returns the default delivery time estimate.
func (z *Zone) EstimatedMinutes() int { return z.estimatedMinutes }

// IsActive reports whether the zone can be assigned to new orders.
func (z *Zone) IsActive() bool { return z.active }

// Description returns the free-text description.
func (z *Zone) Description() string { return z.description }

// SetDescription stores the free-text description.
func (z *Zone) SetDescription(description string) {
	z.description = description
}

// Deactivate withdraws the zone from new orders. Existing orders keep their
// zone reference.
func (z *Zone) Deactivate() {
	z.active = false
}

// Activate re-enables a deactivated zone.
func (z *Zone) Activate() {
	z.active = true
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	z.name = name
	return nil
}

func (z *Zone) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	z.code = code
	return nil
}

func (z *Zone) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}

	z.cost = cost
	return nil
}

func (z *Zone) setEstimatedMinutes(estimatedMinutes int) error {
	if estimatedMinutes < 0 {
		return errs.NewValueIsInvalidError("estimatedMinutes")
	}

	z.estimatedMinutes = estimatedMinutes
	return nil
}
