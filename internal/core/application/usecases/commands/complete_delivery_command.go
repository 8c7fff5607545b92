package commands

import (
	"errors"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/pkg/errs"
	"posdelivery/internal/pkg/guard"
)

// ErrCompleteDeliveryCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a courier finishing a delivery. Photo
// and signature travel with the command as base64 payloads; whether they are
// mandatory is decided by the workspace settings at handling time.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierID   kernel.UUID
	courierName string
	photo       string
	signature   string
	comment     string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(orderID kernel.UUID, courierID kernel.UUID, courierName string) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setCourierName(courierName),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// SetPhoto attaches a proof-of-delivery photo payload.
func (c *CompleteDeliveryCommand) SetPhoto(photo string) {
	c.photo = photo
}

// SetSignature attaches a customer signature payload.
func (c *CompleteDeliveryCommand) SetSignature(signature string) {
	c.signature = signature
}

// SetComment attaches a free-form courier comment recorded with the completion.
func (c *CompleteDeliveryCommand) SetComment(comment string) {
	c.comment = comment
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the calling courier.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID { return c.courierID }

// CourierName returns the calling courier's name for the history log.
func (c CompleteDeliveryCommand) CourierName() string { return c.courierName }

// Photo returns the proof-of-delivery photo payload, empty when none was sent.
func (c CompleteDeliveryCommand) Photo() string { return c.photo }

// Signature returns the customer signature payload, empty when none was sent.
func (c CompleteDeliveryCommand) Signature() string { return c.signature }

// Comment returns the courier comment, empty when none was sent.
func (c CompleteDeliveryCommand) Comment() string { return c.comment }

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CompleteDeliveryCommand) setCourierName(courierName string) error {
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}

	c.courierName = courierName
	return nil
}
