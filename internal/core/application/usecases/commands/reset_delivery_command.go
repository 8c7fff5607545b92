package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/guard"
)

// ErrResetDeliveryCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrResetDeliveryCommandIsNotConstructed = errors.New(
	"ResetDeliveryCommand must be created via NewResetDeliveryCommand constructor",
)

// ResetDeliveryCommand returns a non-terminal delivery to the pending state,
// dropping its courier. Issued from the back office.
type ResetDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetDeliveryCommand creates a command to reset a delivery to pending.
func NewResetDeliveryCommand(orderID kernel.UUID) (ResetDeliveryCommand, error) {
	cmd := ResetDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ResetDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrResetDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to reset.
func (c ResetDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

func (c *ResetDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
