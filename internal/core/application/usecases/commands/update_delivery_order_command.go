package commands

import (
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/delivery"
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrUpdateDeliveryOrderCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrUpdateDeliveryOrderCommandIsNotConstructed = errors.New(
	"UpdateDeliveryOrderCommand must be created via NewUpdateDeliveryOrderCommand constructor",
)

// UpdateDeliveryOrderCommand represents a staff edit of an order's managed
// fields: priority, delivery zone, warehouse notes, and the promised delivery
// time. Only the fields set through the Set methods are changed.
type UpdateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	priority            *delivery.Priority
	zoneID              *kernel.UUID
	warehouseNote       string
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryOrderCommand creates a command to edit an existing order.
func NewUpdateDeliveryOrderCommand(orderID kernel.UUID) (UpdateDeliveryOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateDeliveryOrderCommand{}, err
	}

	return UpdateDeliveryOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateDeliveryOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Priority returns the new priority, nil when unchanged.
func (c UpdateDeliveryOrderCommand) Priority() *delivery.Priority { return c.priority }

// ZoneID returns the new delivery zone, nil when unchanged.
func (c UpdateDeliveryOrderCommand) ZoneID() *kernel.UUID { return c.zoneID }

// WarehouseNote returns the note to append, empty when none.
func (c UpdateDeliveryOrderCommand) WarehouseNote() string { return c.warehouseNote }

// EstimatedDeliveryAt returns the new promised delivery time, nil when unchanged.
func (c UpdateDeliveryOrderCommand) EstimatedDeliveryAt() *time.Time { return c.estimatedDeliveryAt }

// HasChanges reports whether any field was set.
func (c UpdateDeliveryOrderCommand) HasChanges() bool {
	return c.priority != nil || c.zoneID != nil || c.warehouseNote != "" || c.estimatedDeliveryAt != nil
}

// SetPriority requests a priority change.
func (c *UpdateDeliveryOrderCommand) SetPriority(priority delivery.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = &priority
	return nil
}

// SetZoneID requests a delivery zone change.
func (c *UpdateDeliveryOrderCommand) SetZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = &zoneID
	return nil
}

// SetWarehouseNote appends a note from warehouse staff.
func (c *UpdateDeliveryOrderCommand) SetWarehouseNote(note string) {
	c.warehouseNote = note
}

// SetEstimatedDeliveryAt sets a new promised delivery time.
func (c *UpdateDeliveryOrderCommand) SetEstimatedDeliveryAt(estimated time.Time) error {
	if estimated.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryAt")
	}

	c.estimatedDeliveryAt = &estimated
	return nil
}
