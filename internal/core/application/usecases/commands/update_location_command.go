package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrUpdateLocationCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand records a courier position snapshot on an order the
// courier is working on.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierID   kernel.UUID
	courierName string
	location    kernel.GeoLocation

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command to record the courier's
// position. The coordinates are validated against the WGS84 ranges.
func NewUpdateLocationCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	courierName string,
	latitude float64,
	longitude float64,
) (UpdateLocationCommand, error) {
	location, err := kernel.NewGeoLocation(latitude, longitude)
	if err != nil {
		return UpdateLocationCommand{}, err
	}

	if err = errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return UpdateLocationCommand{}, err
	}

	if courierName == "" {
		return UpdateLocationCommand{}, errs.NewValueIsRequiredError("courierName")
	}

	return UpdateLocationCommand{
		orderID:     orderID,
		courierID:   courierID,
		courierName: courierName,
		location:    location,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c UpdateLocationCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the reporting courier.
func (c UpdateLocationCommand) CourierID() kernel.UUID { return c.courierID }

// CourierName returns the courier's display name for the history log.
func (c UpdateLocationCommand) CourierName() string { return c.courierName }

// Location returns the reported position.
func (c UpdateLocationCommand) Location() kernel.GeoLocation { return c.location }
