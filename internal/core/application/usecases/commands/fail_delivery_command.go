package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/guard"
)

// ErrFailDeliveryCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrFailDeliveryCommandIsNotConstructed = errors.New(
	"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
)

// FailDeliveryCommand marks a delivery as failed with an optional reason.
// Issued from the back office.
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a command to fail a delivery.
func NewFailDeliveryCommand(orderID kernel.UUID, reason string) (FailDeliveryCommand, error) {
	cmd := FailDeliveryCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return FailDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to fail.
func (c FailDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// Reason returns the failure reason, possibly empty.
func (c FailDeliveryCommand) Reason() string { return c.reason }

func (c *FailDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
