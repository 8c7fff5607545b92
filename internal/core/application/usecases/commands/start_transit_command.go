package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrStartTransitCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand represents a courier picking up an assigned order and
// heading out. Issued from the courier's app, so it carries the calling
// courier for the ownership check.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierID   kernel.UUID
	courierName string

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command to start transit on an order.
func NewStartTransitCommand(orderID kernel.UUID, courierID kernel.UUID, courierName string) (StartTransitCommand, error) {
	cmd := StartTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setCourierName(courierName),
	); err != nil {
		return StartTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// OrderID returns the order to start.
func (c StartTransitCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the calling courier.
func (c StartTransitCommand) CourierID() kernel.UUID { return c.courierID }

// CourierName returns the calling courier's name for the history log.
func (c StartTransitCommand) CourierName() string { return c.courierName }

func (c *StartTransitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartTransitCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *StartTransitCommand) setCourierName(courierName string) error {
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}

	c.courierName = courierName
	return nil
}
